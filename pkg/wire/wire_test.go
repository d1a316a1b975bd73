package wire_test

import (
	"checkups/pkg/domain"
	"checkups/pkg/wire"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeRequest(t *testing.T) {
	require.JSONEq(t, `{"query":"women's \"health\""}`, string(wire.EncodeRequest(`women's "health"`)))
}

func TestDecodeRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "plain", body: `{"query":"basic checkup"}`, want: "basic checkup"},
		{name: "envelope object", body: `{"body":{"query":"cardiac"}}`, want: "cardiac"},
		{name: "envelope string", body: `{"body":"{\"query\":\"diabetes\"}"}`, want: "diabetes"},
		{name: "top level wins", body: `{"query":"a","body":{"query":"b"}}`, want: "a"},
		{name: "missing query", body: `{"other":1}`, want: ""},
		{name: "null query", body: `{"query":null}`, want: ""},
		{name: "not an object", body: `["query"]`, wantErr: true},
		{name: "invalid json", body: `{"query":`, wantErr: true},
		{name: "numeric query", body: `{"query":42}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := wire.DecodeRequest([]byte(tt.body))
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeResult_Packages(t *testing.T) {
	body := `{"packages":[
		{"hospital":"H","price":100,"description":"D","features":["F1","F2"]},
		{"hospital":"Apollo","price":"Contact for pricing","description":"","features":null,
		 "booking_link":"https://apollo.example/book","rating":4.5}
	]}`

	res, err := wire.DecodeResult([]byte(body))
	require.NoError(t, err)
	require.False(t, res.Failed())

	pkgs := res.Packages()
	require.Len(t, pkgs, 2)
	require.Equal(t, domain.Package{
		Hospital:    "H",
		Price:       domain.Price{Text: "100", Numeric: true},
		Description: "D",
		Features:    []string{"F1", "F2"},
	}, pkgs[0])
	require.Equal(t, "#", pkgs[0].Link())
	require.Equal(t, domain.TextPrice("Contact for pricing"), pkgs[1].Price)
	require.Nil(t, pkgs[1].Features)
	require.Equal(t, "https://apollo.example/book", pkgs[1].Link())
}

func TestDecodeResult_Shapes(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantFailed bool
		wantMsg    string
		wantCount  int
	}{
		{name: "error only", body: `{"error":"X"}`, wantFailed: true, wantMsg: "X"},
		{name: "error wins over packages", body: `{"packages":[{"hospital":"H"}],"error":"X"}`, wantFailed: true, wantMsg: "X"},
		{name: "empty error is ignored", body: `{"error":"","packages":[]}`},
		{name: "null error is ignored", body: `{"error":null}`},
		{name: "empty packages", body: `{"packages":[]}`},
		{name: "null packages", body: `{"packages":null}`},
		{name: "neither field", body: `{}`},
		{name: "object error", body: `{"error":{"code":1}}`, wantFailed: true, wantMsg: `{"code":1}`},
		{name: "one package", body: `{"packages":[{"hospital":"H"}]}`, wantCount: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := wire.DecodeResult([]byte(tt.body))
			require.NoError(t, err)
			require.Equal(t, tt.wantFailed, res.Failed())
			require.Equal(t, tt.wantMsg, res.Message())
			require.Len(t, res.Packages(), tt.wantCount)
		})
	}
}

func TestDecodeResult_Invalid(t *testing.T) {
	for _, body := range []string{
		``,
		`not json`,
		`[]`,
		`{"packages":{}}`,
		`{"packages":[1]}`,
		`{"packages":[{"features":"F1"}]}`,
	} {
		_, err := wire.DecodeResult([]byte(body))
		require.Error(t, err, "body %q", body)
	}
}

func TestEncodeResult(t *testing.T) {
	res := domain.Success(
		domain.Package{
			Hospital:    "H",
			Price:       domain.NumberPrice(100),
			Description: "D",
			Features:    []string{"F1"},
		},
		domain.Package{
			Hospital:    "Apollo",
			Price:       domain.TextPrice("2,500"),
			BookingLink: "https://apollo.example/book",
		},
	)

	require.JSONEq(t, `{"packages":[
		{"hospital":"H","price":100,"description":"D","features":["F1"]},
		{"hospital":"Apollo","price":"2,500","description":"","features":[],"booking_link":"https://apollo.example/book"}
	]}`, string(wire.EncodeResult(res)))

	require.JSONEq(t, `{"packages":[]}`, string(wire.EncodeResult(domain.Success())))
	require.JSONEq(t, `{"error":"boom"}`, string(wire.EncodeResult(domain.Failure("boom"))))
}

func TestEncodeResult_InvalidNumericPriceFallsBackToString(t *testing.T) {
	res := domain.Success(domain.Package{Price: domain.Price{Text: "12 INR", Numeric: true}})
	require.JSONEq(t,
		`{"packages":[{"hospital":"","price":"12 INR","description":"","features":[]}]}`,
		string(wire.EncodeResult(res)))
}

func TestResultRoundTripKeepsOrder(t *testing.T) {
	in := domain.Success(
		domain.Package{Hospital: "A", Price: domain.NumberPrice(1)},
		domain.Package{Hospital: "B", Price: domain.NumberPrice(2)},
		domain.Package{Hospital: "C", Price: domain.NumberPrice(3)},
	)

	out, err := wire.DecodeResult(wire.EncodeResult(in))
	require.NoError(t, err)
	require.Len(t, out.Packages(), 3)
	for i, name := range []string{"A", "B", "C"} {
		require.Equal(t, name, out.Packages()[i].Hospital)
	}
}
