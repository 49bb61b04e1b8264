// Package codec implements the serialization envelopes that sit outside
// the cryptographic core (spec §1, §4.F, §6): JSON, hex, base64, and raw.
// Each carries the canonical (x, y) wire encoding. JSON also carries the
// optional metadata envelope (threshold, id, creation time) and hex carries
// threshold and id; base64 and raw carry the canonical bytes only.
package codec

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/oarkflow/xsss/shamir"
)

// Format names an envelope kind.
type Format string

const (
	JSON   Format = "json"
	Hex    Format = "hex"
	Base64 Format = "base64"
	Raw    Format = "raw"
)

// Envelope is the metadata carried alongside a share by the serialization
// layer. The core never sees it (spec §4.F).
type Envelope struct {
	Threshold *int      `json:"threshold,omitempty"`
	ID        *int      `json:"id,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// jsonShare is the wire shape for the JSON codec.
type jsonShare struct {
	X         byte      `json:"x"`
	Y         string    `json:"y"`
	Threshold *int      `json:"threshold,omitempty"`
	ID        *int      `json:"id,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Encode renders share using format, stamping env's metadata onto the
// share for formats that carry metadata (json, hex).
func Encode(format Format, share shamir.Share, env Envelope) ([]byte, error) {
	share.Threshold = env.Threshold
	share.ID = env.ID

	switch format {
	case JSON:
		js := jsonShare{
			X:         share.X,
			Y:         base64.StdEncoding.EncodeToString(share.Y),
			Threshold: share.Threshold,
			ID:        share.ID,
			CreatedAt: env.CreatedAt,
		}
		return json.Marshal(js)
	case Hex:
		var b strings.Builder
		if share.Threshold != nil || share.ID != nil {
			b.WriteByte('k')
			b.WriteByte('=')
			if share.Threshold != nil {
				b.WriteString(strconv.Itoa(*share.Threshold))
			}
			b.WriteByte(',')
			b.WriteString("id=")
			if share.ID != nil {
				b.WriteString(strconv.Itoa(*share.ID))
			}
			b.WriteByte(';')
		}
		b.WriteString(hex.EncodeToString(share.Bytes()))
		return []byte(b.String()), nil
	case Base64:
		return []byte(base64.StdEncoding.EncodeToString(share.Bytes())), nil
	case Raw:
		return share.Bytes(), nil
	default:
		return nil, fmt.Errorf("codec: unknown format %q", format)
	}
}

// Decode parses data as format, returning the share and whatever metadata
// envelope the format carried (zero value if none).
func Decode(format Format, data []byte) (shamir.Share, Envelope, error) {
	switch format {
	case JSON:
		var js jsonShare
		if err := json.Unmarshal(data, &js); err != nil {
			return shamir.Share{}, Envelope{}, fmt.Errorf("codec: decoding json share: %w", err)
		}
		y, err := base64.StdEncoding.DecodeString(js.Y)
		if err != nil {
			return shamir.Share{}, Envelope{}, fmt.Errorf("codec: decoding json share y: %w", err)
		}
		share := shamir.Share{X: js.X, Y: y, Threshold: js.Threshold, ID: js.ID}
		return share, Envelope{Threshold: js.Threshold, ID: js.ID, CreatedAt: js.CreatedAt}, nil
	case Hex:
		s := string(data)
		env := Envelope{}
		if strings.HasPrefix(s, "k=") {
			idx := strings.IndexByte(s, ';')
			if idx < 0 {
				return shamir.Share{}, Envelope{}, fmt.Errorf("codec: malformed hex envelope")
			}
			header, rest := s[:idx], s[idx+1:]
			s = rest
			for _, field := range strings.Split(header, ",") {
				kv := strings.SplitN(field, "=", 2)
				if len(kv) != 2 || kv[1] == "" {
					continue
				}
				n, err := strconv.Atoi(kv[1])
				if err != nil {
					continue
				}
				switch kv[0] {
				case "k":
					env.Threshold = &n
				case "id":
					env.ID = &n
				}
			}
		}
		raw, err := hex.DecodeString(s)
		if err != nil {
			return shamir.Share{}, Envelope{}, fmt.Errorf("codec: decoding hex share: %w", err)
		}
		share, err := shamir.ShareFromBytes(raw)
		if err != nil {
			return shamir.Share{}, Envelope{}, err
		}
		share.Threshold, share.ID = env.Threshold, env.ID
		return share, env, nil
	case Base64:
		raw, err := base64.StdEncoding.DecodeString(string(data))
		if err != nil {
			return shamir.Share{}, Envelope{}, fmt.Errorf("codec: decoding base64 share: %w", err)
		}
		share, err := shamir.ShareFromBytes(raw)
		return share, Envelope{}, err
	case Raw:
		share, err := shamir.ShareFromBytes(data)
		return share, Envelope{}, err
	default:
		return shamir.Share{}, Envelope{}, fmt.Errorf("codec: unknown format %q", format)
	}
}

// ParseFormat maps a CLI/config string to a Format, defaulting callers to
// an explicit error rather than silently picking one.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case JSON, Hex, Base64, Raw:
		return Format(strings.ToLower(s)), nil
	default:
		return "", fmt.Errorf("codec: unsupported format %q (want json, hex, base64, or raw)", s)
	}
}
