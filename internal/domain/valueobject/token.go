package valueobject

import "log/slog"

// Token wraps the Hetzner API token so the raw value never reaches logs or
// rendered output. Only Reveal returns it in full.
type Token struct {
	value string
}

func NewToken(value string) Token {
	return Token{value: value}
}

// Reveal returns the raw token for the Auth-API-Token header.
func (t Token) Reveal() string {
	return t.value
}

func (t Token) IsZero() bool {
	return t.value == ""
}

func (t Token) String() string {
	if t.value == "" {
		return ""
	}
	return "***"
}

func (t Token) LogValue() slog.Value {
	return slog.StringValue(t.String())
}

func (t *Token) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var plain string
	if err := unmarshal(&plain); err != nil {
		return err
	}
	t.value = plain
	return nil
}

// MarshalYAML emits the masked form. Config files are read, never written
// back, so round-tripping the raw value is not needed.
func (t Token) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}
