package cmd

import (
	"context"
	"encoding/json"
	"fmt"
)

// ReadCmd reads one resource by concrete URI.
type ReadCmd struct {
	URI  string `short:"u" long:"uri" positional-arg-name:"uri" description:"Resource URI, e.g. resource://weather/CA/alerts" required:"yes"`
	JSON bool   `long:"json" description:"Print the whole envelope as JSON"`
}

func (c *ReadCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	result := svc.ReadResource(context.Background(), c.URI)

	if c.JSON {
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return nil
	}
	if err := result.Err(); err != nil {
		return err
	}
	data, _ := json.MarshalIndent(result.Payload, "", "  ")
	fmt.Println(string(data))
	return nil
}
