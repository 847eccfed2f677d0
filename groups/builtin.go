package groups

// builtinDefs returns the FIX 5.0 SP2 repeating groups the library knows out
// of the box. Member-tag sets follow the FIX Trading Community appendix for
// each group; tags are listed in their canonical entry order.
func builtinDefs() []Def {
	return []Def{
		// Parties component (used in many messages).
		{Spec: Spec{
			CountTag:     453, // NoPartyIDs
			DelimiterTag: 448, // PartyID
			MemberTags: []uint32{
				448, // PartyID
				447, // PartyIDSource
				452, // PartyRole
			},
			NestedGroups: []Nested{
				{CountTag: 802, ParentTag: 448}, // PartySubIDsGrp under PartyID
			},
		}},

		// PartySubIDsGrp, nested inside one Parties entry.
		{Spec: Spec{
			CountTag:     802, // NoPartySubIDs
			DelimiterTag: 523, // PartySubID
			MemberTags: []uint32{
				523, // PartySubID
				803, // PartySubIDType
			},
		}},

		// MDFullGrp / MDIncGrp entries in market data messages.
		{Spec: Spec{
			CountTag:     268, // NoMDEntries
			DelimiterTag: 269, // MDEntryType
			MemberTags: []uint32{
				269, // MDEntryType
				270, // MDEntryPx
				271, // MDEntrySize
				272, // MDEntryDate
				273, // MDEntryTime
				290, // MDEntryPositionNo
				336, // TradingSessionID
			},
		}},

		// InstrmtMDReqGrp / instrument lists.
		{Spec: Spec{
			CountTag:     146, // NoRelatedSym
			DelimiterTag: 55,  // Symbol
			MemberTags: []uint32{
				55,  // Symbol
				65,  // SymbolSfx
				48,  // SecurityID
				22,  // SecurityIDSource
				167, // SecurityType
			},
		}},

		// AllocGrp pre-trade allocations.
		{Spec: Spec{
			CountTag:     78, // NoAllocs
			DelimiterTag: 79, // AllocAccount
			MemberTags: []uint32{
				79,  // AllocAccount
				661, // AllocAcctIDSource
				736, // AllocSettlCurrency
				80,  // AllocQty
			},
		}},

		// MDReqGrp: in a MarketDataRequest (V) tag 269 enumerates the entry
		// types being requested, one per entry.
		{MsgType: "V", Spec: Spec{
			CountTag:     267, // NoMDEntryTypes
			DelimiterTag: 269, // MDEntryType
			MemberTags: []uint32{
				269, // MDEntryType
			},
		}},

		// SideCrossOrdModGrp (NewOrderCross 's').
		{MsgType: "s", Spec: Spec{
			CountTag:     552, // NoSides
			DelimiterTag: 54,  // Side
			MemberTags: []uint32{
				54,   // Side
				2102, // ShortMarkingExemptIndicator
				41,   // OrigClOrdID
				11,   // ClOrdID
				526,  // SecondaryClOrdID
				583,  // ClOrdLinkID
				586,  // OrigOrdModTime
				1690, // SideShortSaleExemptionReason
				229,  // TradeOriginationDate
				75,   // TradeDate
				1,    // Account
				660,  // AcctIDSource
				581,  // AccountType
				589,  // DayBookingInst
				590,  // BookingUnit
				591,  // PreallocMethod
				70,   // AllocID
				854,  // QtyType
				38,   // OrderQty
				152,  // CashOrderQty
				516,  // OrderPercent
				468,  // RoundingDirection
				469,  // RoundingModulus
				12,   // Commission
				13,   // CommType
				528,  // OrderCapacity
				529,  // OrderRestrictions
				1724, // OrderOrigination
				1725, // OriginatingDeptID
				1726, // ReceivingDeptID
				1091, // PreTradeAnonymity
				582,  // CustOrderCapacity
				121,  // ForexReq
				120,  // SettlCurrency
			},
			NestedGroups: []Nested{
				{CountTag: 453}, // Parties per side
			},
		}},

		// SideCrossOrdModGrp (CrossOrderCancelReplaceRequest 't').
		{MsgType: "t", Spec: Spec{
			CountTag:     552,
			DelimiterTag: 54,
			MemberTags: []uint32{
				54, 2102, 41, 11, 526, 583, 586, 1690, 229, 75, 1, 660, 581, 589,
				590, 591, 70, 854, 38, 152, 516, 468, 469, 12, 13, 528, 529,
				1724, 1725, 1726, 1091, 582, 121, 120,
			},
			NestedGroups: []Nested{
				{CountTag: 453},
			},
		}},

		// SideCrossOrdCxlGrp (CrossOrderCancelRequest 'u').
		{MsgType: "u", Spec: Spec{
			CountTag:     552,
			DelimiterTag: 54,
			MemberTags: []uint32{
				54,   // Side
				41,   // OrigClOrdID
				11,   // ClOrdID
				526,  // SecondaryClOrdID
				583,  // ClOrdLinkID
				586,  // OrigOrdModTime
				376,  // ComplianceID
				2404, // ComplianceText
				2351, // EncodedComplianceTextLen
				2352, // EncodedComplianceText
				229,  // TradeOriginationDate
				75,   // TradeDate
				58,   // Text
				354,  // EncodedTextLen
				355,  // EncodedText
			},
			NestedGroups: []Nested{
				{CountTag: 453},
			},
		}},

		// ListOrdGrp (NewOrderList 'E').
		{MsgType: "E", Spec: Spec{
			CountTag:     73, // NoOrders
			DelimiterTag: 11, // ClOrdID
			MemberTags: []uint32{
				11,  // ClOrdID
				526, // SecondaryClOrdID
				67,  // ListSeqNo
				55,  // Symbol
				54,  // Side
				38,  // OrderQty
				40,  // OrdType
				44,  // Price
				59,  // TimeInForce
			},
			NestedGroups: []Nested{
				{CountTag: 78}, // per-order allocations
			},
		}},

		// OrdListStatGrp (ListStatus 'N').
		{MsgType: "N", Spec: Spec{
			CountTag:     73, // NoOrders
			DelimiterTag: 11, // ClOrdID
			MemberTags: []uint32{
				11,  // ClOrdID
				526, // SecondaryClOrdID
				14,  // CumQty
				39,  // OrdStatus
				151, // LeavesQty
				84,  // CxlQty
				6,   // AvgPx
				58,  // Text
			},
		}},

		// BidDescReqGrp (BidRequest 'k').
		{MsgType: "k", Spec: Spec{
			CountTag:     398, // NoBidDescriptors
			DelimiterTag: 399, // BidDescriptorType
			MemberTags: []uint32{
				399, // BidDescriptorType
				400, // BidDescriptor
				401, // SideValueInd
			},
		}},
	}
}
