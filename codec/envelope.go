package codec

import "github.com/KatrinaE/fixie-sub000/groups"

// Envelope is one complete message: the fixed header fields, the resolved
// body tree, the checksum trailer, and the delimiter the message was parsed
// with (or should be encoded with). Envelopes are created fresh per call;
// no state is shared between messages.
type Envelope struct {
	// Header fields. Empty string means absent; only BeginString and
	// MsgType are required.
	BeginString  string // tag 8
	BodyLength   string // tag 9, as parsed; recomputed on encode
	MsgType      string // tag 35
	SenderCompID string // tag 49
	TargetCompID string // tag 56
	MsgSeqNum    string // tag 34
	SendingTime  string // tag 52
	ApplVerID    string // tag 1128

	// Body is the resolved field tree.
	Body Tree

	// CheckSum is the trailer as parsed; recomputed on encode.
	CheckSum string // tag 10

	// Delimiter is the record delimiter. Zero means SOH.
	Delimiter byte
}

// Parse decodes a complete wire buffer into an Envelope using the built-in
// group registry. Decode is all-or-nothing: on error no partial envelope is
// returned.
func Parse(buf []byte) (*Envelope, error) {
	return ParseWith(buf, nil)
}

// ParseWith decodes a wire buffer resolving groups against the given
// registry. A nil registry means the built-in definitions.
func ParseWith(buf []byte, registry *groups.Registry) (*Envelope, error) {
	tokens, err := Tokenize(buf)
	if err != nil {
		return nil, err
	}

	env := &Envelope{Delimiter: DetectDelimiter(buf)}

	headerFields := map[uint32]*string{
		TagBeginString:  &env.BeginString,
		TagBodyLength:   &env.BodyLength,
		TagMsgType:      &env.MsgType,
		TagSenderCompID: &env.SenderCompID,
		TagTargetCompID: &env.TargetCompID,
		TagMsgSeqNum:    &env.MsgSeqNum,
		TagSendingTime:  &env.SendingTime,
		TagApplVerID:    &env.ApplVerID,
	}

	body := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if dst, ok := headerFields[tok.Tag]; ok && *dst == "" {
			*dst = tok.Value
			continue
		}
		if tok.Tag == TagCheckSum {
			env.CheckSum = tok.Value
			continue
		}
		body = append(body, tok)
	}

	// Required top-level fields, checked before resolution proceeds.
	if env.BeginString == "" {
		return nil, &MissingFieldError{Tag: TagBeginString}
	}
	if env.MsgType == "" {
		return nil, &MissingFieldError{Tag: TagMsgType}
	}

	env.Body, err = NewResolver(registry).Resolve(body, env.MsgType)
	if err != nil {
		return nil, err
	}
	return env, nil
}

// Encode serializes the envelope with its own delimiter, recomputing
// BodyLength and CheckSum.
func (env *Envelope) Encode() []byte {
	return NewEncoder(env.Delimiter).Encode(env)
}
