package cmd

import (
	"fmt"
	"sort"
)

// ListResourcesCmd prints every registered resource template.
type ListResourcesCmd struct{}

func (c *ListResourcesCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	resources := svc.Resources()
	sort.Slice(resources, func(i, j int) bool { return resources[i].Template < resources[j].Template })
	for _, r := range resources {
		fmt.Printf("%s\t%s\n", r.Template, r.Description)
	}
	return nil
}
