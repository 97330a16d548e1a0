package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// renderEntity prints a titled YAML view of an API object. The object is
// round-tripped through JSON so the output keys match the wire names.
func renderEntity(kind, name string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling %s: %v\n", kind, err)
		os.Exit(1)
	}

	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling %s: %v\n", kind, err)
		os.Exit(1)
	}

	data, err := yaml.Marshal(tree)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling %s: %v\n", kind, err)
		os.Exit(1)
	}

	caser := cases.Title(language.English)
	fmt.Printf("%s: %s\n", caser.String(kind), name)
	fmt.Print(string(data))
}
