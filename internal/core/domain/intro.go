package domain

import (
	"encoding/base64"

	"github.com/mr-tron/base58"
	"go.trai.ch/zerr"
)

// Encoding names a text encoding for EncodeMessage.
type Encoding string

const (
	// EncodingBase64 is standard padded base64.
	EncodingBase64 Encoding = "base64"
	// EncodingBase58 is the Bitcoin-alphabet base58.
	EncodingBase58 Encoding = "base58"
)

// WelcomeMessage returns the greeting shown by the welcome command.
func WelcomeMessage() string {
	return "The key to efficient learning is practice!"
}

// EncodeMessage encodes msg using the given encoding.
func EncodeMessage(msg string, enc Encoding) (string, error) {
	switch enc {
	case EncodingBase64:
		return base64.StdEncoding.EncodeToString([]byte(msg)), nil
	case EncodingBase58:
		return base58.Encode([]byte(msg)), nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownEncoding, "encode message"), "encoding", string(enc))
	}
}
