package codec

// Wire delimiters. SOH is the protocol's native control byte; Pipe is the
// human-readable substitute accepted in fixtures and wire captures. A buffer
// uses one or the other, never both.
const (
	SOH  byte = 0x01
	Pipe byte = '|'
)

// Protocol version identifiers.
const (
	BeginStringFIXT11 = "FIXT.1.1"
	ApplVerIDFIX50SP2 = "9" // ApplVerID(1128) value for FIX 5.0 SP2
)

// Standard header and trailer tags.
const (
	TagBeginString  uint32 = 8
	TagBodyLength   uint32 = 9
	TagCheckSum     uint32 = 10
	TagMsgSeqNum    uint32 = 34
	TagMsgType      uint32 = 35
	TagSenderCompID uint32 = 49
	TagSendingTime  uint32 = 52
	TagTargetCompID uint32 = 56
	TagApplVerID    uint32 = 1128
)

// Common body tags used throughout the codebase and its tests.
const (
	TagAvgPx         uint32 = 6
	TagClOrdID       uint32 = 11
	TagCumQty        uint32 = 14
	TagExecID        uint32 = 17
	TagOrderID       uint32 = 37
	TagOrderQty      uint32 = 38
	TagOrdStatus     uint32 = 39
	TagOrdType       uint32 = 40
	TagPrice         uint32 = 44
	TagSide          uint32 = 54
	TagSymbol        uint32 = 55
	TagText          uint32 = 58
	TagTransactTime  uint32 = 60
	TagNoOrders      uint32 = 73
	TagNoAllocs      uint32 = 78
	TagNoMDEntries   uint32 = 268
	TagMDEntryType   uint32 = 269
	TagPartyID       uint32 = 448
	TagNoPartyIDs    uint32 = 453
	TagNoSides       uint32 = 552
	TagNoPartySubIDs uint32 = 802
)

// Message type values (MsgType field 35) for the messages this library and
// its collaborators work with.
const (
	MsgTypeHeartbeat                 = "0"
	MsgTypeTestRequest               = "1"
	MsgTypeResendRequest             = "2"
	MsgTypeReject                    = "3"
	MsgTypeLogout                    = "5"
	MsgTypeExecutionReport           = "8"
	MsgTypeOrderCancelReject         = "9"
	MsgTypeLogon                     = "A"
	MsgTypeNews                      = "B"
	MsgTypeEmail                     = "C"
	MsgTypeNewOrderSingle            = "D"
	MsgTypeNewOrderList              = "E"
	MsgTypeOrderCancelRequest        = "F"
	MsgTypeOrderCancelReplaceRequest = "G"
	MsgTypeOrderStatusRequest        = "H"
	MsgTypeListStatus                = "N"
	MsgTypeDontKnowTrade             = "Q"
	MsgTypeMarketDataRequest         = "V"
	MsgTypeMarketDataSnapshot        = "W"
	MsgTypeBidRequest                = "k"
	MsgTypeOrderMassCancelRequest    = "q"
	MsgTypeOrderMassCancelReport     = "r"
	MsgTypeNewOrderCross             = "s"
	MsgTypeCrossOrderCancelReplace   = "t"
	MsgTypeCrossOrderCancelRequest   = "u"
)
