package http

import (
	"context"
	"fmt"
	"io"
)

func ExampleClient() {
	cl := &Client{Dialer: &CoreDialer{TLS: &DefaultTLSWrapper{}}}
	resp, err := cl.Do(context.Background(), Get("https://www.google.com/?a=b"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(resp.StatusCode)
}

func ExampleClient_lazy() {
	cl := &Client{Dialer: &CoreDialer{}}
	lazy, err := cl.DoLazy(context.Background(), Get("http://example.com/"))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer lazy.Body.Close()
	b, err := io.ReadAll(lazy.Body)
	fmt.Println(err)
	fmt.Println(string(b))
}
