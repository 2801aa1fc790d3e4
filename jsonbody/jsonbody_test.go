package jsonbody

import (
	"io"
	"testing"

	httpc "github.com/nullship/httpc"
)

type payload struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	r, contentType, err := Encode(payload{Name: "ada", Age: 36})
	if err != nil {
		t.Fatal(err)
	}
	if contentType != "application/json; charset=UTF-8" {
		t.Errorf("contentType = %q", contentType)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}

	resp := &httpc.Response{Body: b}
	var got payload
	if err := Decode(resp, &got); err != nil {
		t.Fatal(err)
	}
	if got != (payload{Name: "ada", Age: 36}) {
		t.Errorf("got %+v", got)
	}
}

func TestEncodeRejectsUnmarshalableValue(t *testing.T) {
	_, _, err := Encode(make(chan int))
	if err == nil {
		t.Fatal("expected an encode error for an unmarshalable type")
	}
}
