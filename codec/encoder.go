package codec

import "strconv"

// Encoder flattens a message envelope back into wire bytes. Encoding is
// deterministic and total: given a structurally valid envelope there is no
// failure path, and it is the exact inverse of Resolve for any tree the
// Resolver produced.
type Encoder struct {
	delimiter byte
}

// NewEncoder returns an Encoder writing the given record delimiter.
// A zero delimiter means SOH.
func NewEncoder(delimiter byte) *Encoder {
	if delimiter == 0 {
		delimiter = SOH
	}
	return &Encoder{delimiter: delimiter}
}

// Encode serializes the envelope.
//
// Header fields are emitted in the canonical order - BeginString(8), then
// MsgType(35), SenderCompID(49), TargetCompID(56), MsgSeqNum(34),
// SendingTime(52), ApplVerID(1128) - skipping those not present. The body
// tree is flattened depth-first: a Group emits its count tag with the
// literal entry count, then each entry's fields in captured order.
// BodyLength(9) covers everything from the MsgType tag through the last
// body delimiter and is inserted after BeginString; CheckSum(10) is the
// byte sum mod 256 of the assembled message, three digits zero-padded,
// appended as the only trailer field.
func (e *Encoder) Encode(env *Envelope) []byte {
	d := e.delimiter

	header := []Token{
		{TagMsgType, env.MsgType},
		{TagSenderCompID, env.SenderCompID},
		{TagTargetCompID, env.TargetCompID},
		{TagMsgSeqNum, env.MsgSeqNum},
		{TagSendingTime, env.SendingTime},
		{TagApplVerID, env.ApplVerID},
	}

	body := make([]byte, 0, 256)
	for _, f := range header {
		if f.Value != "" {
			body = appendField(body, f.Tag, f.Value, d)
		}
	}
	body = appendNodes(body, env.Body, d)

	beginString := env.BeginString
	if beginString == "" {
		beginString = BeginStringFIXT11
	}

	msg := make([]byte, 0, len(body)+32)
	msg = appendField(msg, TagBeginString, beginString, d)
	msg = appendField(msg, TagBodyLength, strconv.Itoa(len(body)), d)
	msg = append(msg, body...)
	msg = appendField(msg, TagCheckSum, Checksum(msg), d)
	return msg
}

// appendNodes flattens a node list depth-first in captured order.
func appendNodes(buf []byte, nodes []Node, d byte) []byte {
	for _, node := range nodes {
		switch n := node.(type) {
		case Scalar:
			buf = appendField(buf, n.Tag, n.Value, d)
		case Group:
			buf = appendField(buf, n.CountTag, strconv.Itoa(len(n.Entries)), d)
			for _, entry := range n.Entries {
				buf = appendNodes(buf, entry, d)
			}
		}
	}
	return buf
}

// appendField writes one tag=value record including its trailing delimiter.
func appendField(buf []byte, tag uint32, value string, d byte) []byte {
	buf = strconv.AppendUint(buf, uint64(tag), 10)
	buf = append(buf, '=')
	buf = append(buf, value...)
	buf = append(buf, d)
	return buf
}

// Checksum computes the FIX trailer checksum of the given bytes: the byte
// sum modulo 256, rendered as three zero-padded decimal digits.
func Checksum(b []byte) string {
	sum := 0
	for _, c := range b {
		sum += int(c)
	}
	sum %= 256
	return string([]byte{
		'0' + byte(sum/100),
		'0' + byte(sum/10%10),
		'0' + byte(sum%10),
	})
}
