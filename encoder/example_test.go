package encoder_test

import (
	"fmt"

	"github.com/jonwraymond/urlsafe/encoder"
)

func ExampleEncode() {
	fmt.Println(encoder.Encode("http://localhost/ foo"))
	fmt.Println(encoder.Encode("http://localhost/%20foo"))
	fmt.Println(encoder.Encode("http://localhost/%foo"))
	// Output:
	// http://localhost/%20foo
	// http://localhost/%20foo
	// http://localhost/%25foo
}

func ExampleEncoder_Encode() {
	enc, err := encoder.New(encoder.DefaultConfig())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(enc.Encode("/search?q=café au lait"))
	fmt.Println(enc.Lookup("/search?q=café au lait"))
	// Output:
	// /search?q=caf%C3%A9%20au%20lait
	// cached
}

func ExampleEncoder_EncodeUTF16() {
	enc, _ := encoder.New(encoder.DefaultConfig())

	// A lone low surrogate followed by a valid pair.
	fmt.Println(enc.EncodeUTF16([]uint16{0xdc00, '/', 0xd83d, 0xde00}))
	// Output:
	// %EF%BF%BD/%F0%9F%98%80
}
