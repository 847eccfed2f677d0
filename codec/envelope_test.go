package codec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KatrinaE/fixie-sub000/errors"
)

func TestParse_FlatMessage(t *testing.T) {
	env, err := Parse([]byte("8=FIXT.1.1|35=D|55=AAPL|54=1|"))
	require.NoError(t, err)

	assert.Equal(t, "FIXT.1.1", env.BeginString)
	assert.Equal(t, "D", env.MsgType)
	assert.Equal(t, Pipe, env.Delimiter)

	want := Tree{Scalar{55, "AAPL"}, Scalar{54, "1"}}
	assert.Equal(t, want, env.Body)
}

func TestParse_FullHeader(t *testing.T) {
	env, err := Parse([]byte(soh(
		"8=FIXT.1.1|9=68|35=D|49=BUYSIDE|56=SELLSIDE|34=7|52=20260826-12:00:00|1128=9|55=EURUSD|10=123|")))
	require.NoError(t, err)

	assert.Equal(t, "BUYSIDE", env.SenderCompID)
	assert.Equal(t, "SELLSIDE", env.TargetCompID)
	assert.Equal(t, "7", env.MsgSeqNum)
	assert.Equal(t, "20260826-12:00:00", env.SendingTime)
	assert.Equal(t, "9", env.ApplVerID)
	assert.Equal(t, "68", env.BodyLength)
	assert.Equal(t, "123", env.CheckSum)
	assert.Equal(t, SOH, env.Delimiter)

	sym, ok := env.Body.Field(55)
	require.True(t, ok)
	assert.Equal(t, "EURUSD", sym)
}

func TestParse_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		buf  string
		tag  uint32
	}{
		{"no begin string", "35=D|55=AAPL|", 8},
		{"no message type", "8=FIXT.1.1|55=AAPL|", 35},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.buf))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrMissingRequiredField))

			var missing *MissingFieldError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, test.tag, missing.Tag)
		})
	}
}

func TestParse_MalformedPropagates(t *testing.T) {
	_, err := Parse([]byte("8=FIXT.1.1|35=D|garbage|"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMalformedToken))
}

func TestParse_AllOrNothing(t *testing.T) {
	env, err := Parse([]byte("8=FIXT.1.1|35=D|453=5|448=ONLY|"))
	require.Error(t, err)
	assert.Nil(t, env)
}

func TestRoundTrip_FlatMessage(t *testing.T) {
	env, err := Parse([]byte("8=FIXT.1.1|35=D|55=AAPL|54=1|"))
	require.NoError(t, err)

	reparsed, err := Parse(env.Encode())
	require.NoError(t, err)

	// Tags 9 and 10 are recomputed; everything else must survive intact.
	assert.Equal(t, env.MsgType, reparsed.MsgType)
	if diff := cmp.Diff(env.Body, reparsed.Body); diff != "" {
		t.Errorf("body tree mismatch (-original +reparsed):\n%s", diff)
	}
}

func TestRoundTrip_GroupedMessage(t *testing.T) {
	messages := []struct {
		name string
		wire string
	}{
		{"parties", "8=FIXT.1.1|35=D|49=BUY|56=SELL|34=3|1128=9|" +
			"453=2|448=TRADER1|447=D|452=1|448=DESK22|447=D|452=24|55=MSFT|54=1|"},
		{"nested parties", "8=FIXT.1.1|35=D|" +
			"453=1|448=TRADER1|802=2|523=SUB1|803=1|523=SUB2|803=2|447=D|55=MSFT|"},
		{"cross order sides", "8=FIXT.1.1|35=s|" +
			"552=2|54=1|11=ORD1|38=100|54=2|11=ORD2|38=200|55=MSFT|"},
		{"market data", "8=FIXT.1.1|35=W|" +
			"268=2|269=0|270=100.5|271=500|269=1|270=100.7|271=300|55=MSFT|"},
		{"zero count group", "8=FIXT.1.1|35=D|453=0|55=MSFT|"},
	}

	for _, m := range messages {
		t.Run(m.name, func(t *testing.T) {
			env, err := Parse([]byte(m.wire))
			require.NoError(t, err)

			encoded := env.Encode()
			reparsed, err := Parse(encoded)
			require.NoError(t, err)

			assert.Equal(t, env.BeginString, reparsed.BeginString)
			assert.Equal(t, env.MsgType, reparsed.MsgType)
			assert.Equal(t, env.SenderCompID, reparsed.SenderCompID)
			assert.Equal(t, env.TargetCompID, reparsed.TargetCompID)
			if diff := cmp.Diff(env.Body, reparsed.Body); diff != "" {
				t.Errorf("body tree mismatch (-original +reparsed):\n%s", diff)
			}
		})
	}
}

func TestRoundTrip_PreservesDelimiter(t *testing.T) {
	env, err := Parse([]byte("8=FIXT.1.1|35=D|55=AAPL|"))
	require.NoError(t, err)
	assert.Equal(t, Pipe, DetectDelimiter(env.Encode()))

	env, err = Parse([]byte(soh("8=FIXT.1.1|35=D|55=AAPL|")))
	require.NoError(t, err)
	assert.Equal(t, SOH, DetectDelimiter(env.Encode()))
}

func TestRoundTrip_EncodedChecksumValidates(t *testing.T) {
	env, err := Parse([]byte("8=FIXT.1.1|35=D|453=1|448=TRADER1|452=1|55=MSFT|"))
	require.NoError(t, err)

	encoded := env.Encode()
	reparsed, err := Parse(encoded)
	require.NoError(t, err)

	trailerStart := len(encoded) - len("10=NNN|")
	assert.Equal(t, Checksum(encoded[:trailerStart]), reparsed.CheckSum)
}

func TestParse_ConcurrentUse(t *testing.T) {
	wire := []byte("8=FIXT.1.1|35=D|453=2|448=A|452=1|448=B|452=2|55=MSFT|")

	done := make(chan error, 16)
	for i := 0; i < 16; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				env, err := Parse(wire)
				if err != nil {
					done <- err
					return
				}
				if _, err := Parse(env.Encode()); err != nil {
					done <- err
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 16; i++ {
		require.NoError(t, <-done)
	}
}
