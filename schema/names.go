package schema

import "strconv"

// tagNames maps common FIX tags to their standard names. Keep alphabetized
// by tag number when adding entries.
var tagNames = map[uint32]string{
	1:    "Account",
	6:    "AvgPx",
	8:    "BeginString",
	9:    "BodyLength",
	10:   "CheckSum",
	11:   "ClOrdID",
	12:   "Commission",
	13:   "CommType",
	14:   "CumQty",
	17:   "ExecID",
	22:   "SecurityIDSource",
	31:   "LastPx",
	32:   "LastQty",
	34:   "MsgSeqNum",
	35:   "MsgType",
	37:   "OrderID",
	38:   "OrderQty",
	39:   "OrdStatus",
	40:   "OrdType",
	41:   "OrigClOrdID",
	44:   "Price",
	48:   "SecurityID",
	49:   "SenderCompID",
	52:   "SendingTime",
	54:   "Side",
	55:   "Symbol",
	56:   "TargetCompID",
	58:   "Text",
	59:   "TimeInForce",
	60:   "TransactTime",
	65:   "SymbolSfx",
	66:   "ListID",
	67:   "ListSeqNo",
	68:   "TotNoOrders",
	70:   "AllocID",
	73:   "NoOrders",
	75:   "TradeDate",
	78:   "NoAllocs",
	79:   "AllocAccount",
	80:   "AllocQty",
	82:   "NoRpts",
	83:   "RptSeq",
	94:   "EmailType",
	98:   "EncryptMethod",
	102:  "CxlRejReason",
	108:  "HeartBtInt",
	112:  "TestReqID",
	146:  "NoRelatedSym",
	147:  "Subject",
	148:  "Headline",
	150:  "ExecType",
	151:  "LeavesQty",
	164:  "EmailThreadID",
	167:  "SecurityType",
	262:  "MDReqID",
	263:  "SubscriptionRequestType",
	264:  "MarketDepth",
	267:  "NoMDEntryTypes",
	268:  "NoMDEntries",
	269:  "MDEntryType",
	270:  "MDEntryPx",
	271:  "MDEntrySize",
	272:  "MDEntryDate",
	273:  "MDEntryTime",
	290:  "MDEntryPositionNo",
	336:  "TradingSessionID",
	358:  "EncodedSubjectLen",
	359:  "EncodedSubject",
	390:  "BidID",
	391:  "ClientBidID",
	394:  "BidType",
	398:  "NoBidDescriptors",
	399:  "BidDescriptorType",
	400:  "BidDescriptor",
	401:  "SideValueInd",
	447:  "PartyIDSource",
	448:  "PartyID",
	452:  "PartyRole",
	453:  "NoPartyIDs",
	523:  "PartySubID",
	552:  "NoSides",
	581:  "AccountType",
	583:  "ClOrdLinkID",
	660:  "AcctIDSource",
	661:  "AllocAcctIDSource",
	736:  "AllocSettlCurrency",
	802:  "NoPartySubIDs",
	803:  "PartySubIDType",
	1128: "ApplVerID",
}

// TagName returns the standard name for a tag, or "Tag<n>" for tags the
// dictionary does not know. Unknown tags are expected; the codec tolerates
// protocol extensions and so does the presentation of them.
func TagName(tag uint32) string {
	if name, ok := tagNames[tag]; ok {
		return name
	}
	return "Tag" + strconv.FormatUint(uint64(tag), 10)
}

// msgTypeNames maps MsgType(35) values to message names.
var msgTypeNames = map[string]string{
	"0": "Heartbeat",
	"1": "TestRequest",
	"2": "ResendRequest",
	"3": "Reject",
	"5": "Logout",
	"8": "ExecutionReport",
	"9": "OrderCancelReject",
	"A": "Logon",
	"B": "News",
	"C": "Email",
	"D": "NewOrderSingle",
	"E": "NewOrderList",
	"F": "OrderCancelRequest",
	"G": "OrderCancelReplaceRequest",
	"H": "OrderStatusRequest",
	"N": "ListStatus",
	"Q": "DontKnowTrade",
	"V": "MarketDataRequest",
	"W": "MarketDataSnapshotFullRefresh",
	"k": "BidRequest",
	"q": "OrderMassCancelRequest",
	"r": "OrderMassCancelReport",
	"s": "NewOrderCross",
	"t": "CrossOrderCancelReplaceRequest",
	"u": "CrossOrderCancelRequest",
}

// MsgTypeName returns the message name for a MsgType value, or the value
// itself when unknown.
func MsgTypeName(msgType string) string {
	if name, ok := msgTypeNames[msgType]; ok {
		return name
	}
	return msgType
}
