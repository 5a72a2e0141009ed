// Package main performs a basic JSONPath query in order to test WASM compilation.
package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pathlang/sqljsonpath/path"
)

func main() {
	// Parse a jsonpath query.
	p, _ := path.Parse(`$.foo`)

	// Select values from unmarshaled JSON input.
	var value any
	_ = json.Unmarshal([]byte(`{"foo": "bar"}`), &value)
	result, _ := p.Query(context.Background(), value)

	// Show the result.
	//nolint:errchkjson
	items, _ := json.Marshal(result)

	//nolint:forbidigo
	fmt.Printf("%s\n", items)
}
