package promptwire_test

import (
	"fmt"
	"strings"

	"github.com/promptwire/promptwire"
)

func ExampleWriterHandler() {
	var h promptwire.WriterHandler // zero value writes to os.Stdout
	h.HandleToken("Hello, ")
	h.HandleToken("world!")
	// Output: Hello, world!
}

func ExampleDeltaHandler() {
	var c promptwire.Collector
	d := promptwire.NewDeltaHandler(&c)
	for _, snapshot := range []string{"The", "The qui", "The quick fox"} {
		fmt.Printf("%q\n", d.HandleToken(snapshot))
	}
	fmt.Println(c.String())
	// Output:
	// "The"
	// " qui"
	// "ck fox"
	// The quick fox
}

func ExampleFitter_Fit() {
	f, err := promptwire.NewFitter(nil, 6, promptwire.WithReserve(2))
	if err != nil {
		panic(err)
	}
	res, err := f.Fit(strings.Repeat("abcd", 8)) // 8 estimated tokens
	if err != nil {
		panic(err)
	}
	fmt.Println(res.PromptTokens, res.FittedTokens, res.Truncated())
	// Output: 8 4 true
}

func Example() {
	// Providers that resend the full text on every event still stream
	// cleanly to the terminal through a DeltaHandler.
	d := promptwire.NewDeltaHandler(nil) // nil next prints to os.Stdout
	d.HandleToken("Streaming")
	d.HandleToken("Streaming is easy")
	fmt.Println()
	// Output: Streaming is easy
}
