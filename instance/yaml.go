// SPDX-License-Identifier: MIT

package instance

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML or JSON document with the keys costs, supply and
// demand. Unknown keys are rejected.
func ParseYAML(r io.Reader) (*Instance, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	in := &Instance{}
	if err := dec.Decode(in); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrSyntax)
		}

		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return in, nil
}

// WriteYAML encodes in as YAML.
func WriteYAML(w io.Writer, in *Instance) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(in); err != nil {
		return fmt.Errorf("instance: encode yaml: %w", err)
	}

	return enc.Close()
}
