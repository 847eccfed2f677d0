package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/KatrinaE/fixie-sub000/codec"
)

// Side values for tag 54.
const (
	SideBuy  = "1"
	SideSell = "2"
)

// OrdType values for tag 40.
const (
	OrdTypeMarket = "1"
	OrdTypeLimit  = "2"
)

// Order is the typed surface for building a NewOrderSingle. Zero-valued
// optional fields are omitted from the wire.
type Order struct {
	ClOrdID string // generated when empty
	Symbol  string
	Side    string
	OrdType string
	Qty     string
	Price   string
}

// NewOrderSingle builds a NewOrderSingle (D) envelope from the typed order.
// A blank ClOrdID gets a generated UUID so every order is individually
// cancelable; TransactTime is stamped with the current UTC time.
func NewOrderSingle(order Order) (*codec.Envelope, error) {
	if order.ClOrdID == "" {
		order.ClOrdID = uuid.NewString()
	}

	values := map[uint32]string{
		11: order.ClOrdID,
		55: order.Symbol,
		54: order.Side,
		40: order.OrdType,
		60: time.Now().UTC().Format("20060102-15:04:05.000"),
	}
	if order.Qty != "" {
		values[38] = order.Qty
	}
	if order.Price != "" {
		values[44] = order.Price
	}

	return Build(Lookup(codec.MsgTypeNewOrderSingle), values)
}
