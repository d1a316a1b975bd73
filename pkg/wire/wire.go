// Package wire implements the JSON wire format of the /search endpoint and
// of the upstream knowledge-base gateway.
//
// Request:  {"query": "<string>"}, optionally wrapped in an API Gateway style
// envelope {"body": {"query": ...}} or {"body": "<json string>"}.
// Response: {"packages": [...]} or {"error": "<string>"}. When both keys are
// present the error wins; when neither is present the result is an empty
// success.
package wire

import (
	"checkups/pkg/domain"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// ContentType is the media type of every payload in this package.
const ContentType = "application/json"

// EncodeRequest encodes a search request for the given query.
func EncodeRequest(query string) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("query")
	e.Str(query)
	e.ObjEnd()

	return e.Bytes()
}

// DecodeRequest extracts the query from a search request. A missing query is
// not an error; it is returned as an empty string so callers can respond
// with their own validation message.
func DecodeRequest(b []byte) (string, error) {
	d := jx.DecodeBytes(b)
	if d.Next() != jx.Object {
		return "", errors.New("request must be a JSON object")
	}

	var query, nested string
	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "query":
			s, err := optionalString(d)
			if err != nil {
				return errors.Wrap(err, "query")
			}
			query = s
		case "body":
			s, err := decodeEnvelope(d)
			if err != nil {
				return errors.Wrap(err, "body")
			}
			nested = s
		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return "", errors.Wrap(err, "decode request")
	}

	if query == "" {
		query = nested
	}

	return query, nil
}

// decodeEnvelope reads the query out of an API Gateway style "body" value,
// which is either an object or a string holding a JSON object.
func decodeEnvelope(d *jx.Decoder) (string, error) {
	switch d.Next() {
	case jx.Object:
		raw, err := d.Raw()
		if err != nil {
			return "", err
		}

		return DecodeRequest(raw)
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return "", err
		}

		return DecodeRequest([]byte(s))
	default:
		return "", d.Skip()
	}
}

// EncodeResult encodes a search result as a response body.
func EncodeResult(r domain.SearchResult) []byte {
	if r.Failed() {
		return EncodeError(r.Message())
	}

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("packages")
	e.ArrStart()
	for _, p := range r.Packages() {
		encodePackage(&e, p)
	}
	e.ArrEnd()
	e.ObjEnd()

	return e.Bytes()
}

// EncodeError encodes an error response body.
func EncodeError(msg string) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("error")
	e.Str(msg)
	e.ObjEnd()

	return e.Bytes()
}

func encodePackage(e *jx.Encoder, p domain.Package) {
	e.ObjStart()
	e.FieldStart("hospital")
	e.Str(p.Hospital)
	e.FieldStart("price")
	if p.Price.Numeric && isNumber(p.Price.Text) {
		e.Num(jx.Num(p.Price.Text))
	} else {
		e.Str(p.Price.Text)
	}
	e.FieldStart("description")
	e.Str(p.Description)
	e.FieldStart("features")
	e.ArrStart()
	for _, f := range p.Features {
		e.Str(f)
	}
	e.ArrEnd()
	if p.BookingLink != "" {
		e.FieldStart("booking_link")
		e.Str(p.BookingLink)
	}
	e.ObjEnd()
}

// DecodeResult decodes a response body into a tagged search result.
func DecodeResult(b []byte) (domain.SearchResult, error) {
	d := jx.DecodeBytes(b)
	if d.Next() != jx.Object {
		return domain.SearchResult{}, errors.New("response must be a JSON object")
	}

	var (
		message  string
		packages []domain.Package
	)
	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "error":
			msg, err := decodeErrorValue(d)
			if err != nil {
				return errors.Wrap(err, "error")
			}
			message = msg
		case "packages":
			pkgs, err := decodePackages(d)
			if err != nil {
				return errors.Wrap(err, "packages")
			}
			packages = pkgs
		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return domain.SearchResult{}, errors.Wrap(err, "decode response")
	}

	if message != "" {
		return domain.Failure(message), nil
	}

	return domain.Success(packages...), nil
}

// decodeErrorValue returns the display text of an "error" value. Null and
// empty strings mean no error; non-string values are shown as raw JSON.
func decodeErrorValue(d *jx.Decoder) (string, error) {
	switch d.Next() {
	case jx.String:
		return d.Str()
	case jx.Null:
		return "", d.Null()
	case jx.Bool:
		v, err := d.Bool()
		if err != nil || !v {
			return "", err
		}

		return "true", nil
	default:
		raw, err := d.Raw()
		if err != nil {
			return "", err
		}

		return raw.String(), nil
	}
}

func decodePackages(d *jx.Decoder) ([]domain.Package, error) {
	switch d.Next() {
	case jx.Null:
		return nil, d.Null()
	case jx.Array:
	default:
		return nil, errors.New("expected array")
	}

	var out []domain.Package
	if err := d.Arr(func(d *jx.Decoder) error {
		p, err := decodePackage(d)
		if err != nil {
			return errors.Wrapf(err, "package %d", len(out))
		}
		out = append(out, p)

		return nil
	}); err != nil {
		return nil, err
	}

	return out, nil
}

func decodePackage(d *jx.Decoder) (domain.Package, error) {
	var p domain.Package
	if d.Next() != jx.Object {
		return p, errors.New("expected object")
	}

	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch string(key) {
		case "hospital":
			p.Hospital, err = scalarString(d)
		case "price":
			p.Price, err = decodePrice(d)
		case "description":
			p.Description, err = scalarString(d)
		case "features":
			p.Features, err = decodeFeatures(d)
		case "booking_link":
			p.BookingLink, err = optionalString(d)
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrap(err, string(key))
		}

		return nil
	})

	return p, err
}

func decodePrice(d *jx.Decoder) (domain.Price, error) {
	switch d.Next() {
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return domain.Price{}, err
		}

		return domain.Price{Text: n.String(), Numeric: true}, nil
	default:
		s, err := scalarString(d)

		return domain.TextPrice(s), err
	}
}

func decodeFeatures(d *jx.Decoder) ([]string, error) {
	switch d.Next() {
	case jx.Null:
		return nil, d.Null()
	case jx.Array:
	default:
		return nil, errors.New("expected array")
	}

	var out []string
	err := d.Arr(func(d *jx.Decoder) error {
		s, err := scalarString(d)
		if err != nil {
			return err
		}
		out = append(out, s)

		return nil
	})

	return out, err
}

// optionalString reads a string or null.
func optionalString(d *jx.Decoder) (string, error) {
	switch d.Next() {
	case jx.Null:
		return "", d.Null()
	case jx.String:
		return d.Str()
	default:
		return "", errors.Errorf("expected string, got %s", d.Next())
	}
}

// scalarString reads a string, number, bool or null as display text.
func scalarString(d *jx.Decoder) (string, error) {
	switch d.Next() {
	case jx.String:
		return d.Str()
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return "", err
		}

		return n.String(), nil
	case jx.Bool:
		v, err := d.Bool()

		return strconv.FormatBool(v), err
	case jx.Null:
		return "", d.Null()
	default:
		return "", errors.Errorf("expected scalar, got %s", d.Next())
	}
}

func isNumber(s string) bool {
	d := jx.DecodeStr(s)
	if d.Next() != jx.Number {
		return false
	}
	if _, err := d.Num(); err != nil {
		return false
	}

	return d.Next() == jx.Invalid
}
