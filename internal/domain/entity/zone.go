package entity

import "github.com/lite-lake/hetznerdns/internal/domain"

// ZoneRecords is the snapshot of one zone: the zone identity plus the
// records pulled from the API.
type ZoneRecords struct {
	Name    string   `yaml:"name"`
	ID      string   `yaml:"id,omitempty"`
	Records []Record `yaml:"records"`
}

func (z *ZoneRecords) Validate() error {
	if z.Name == "" {
		return domain.ErrInvalidName
	}
	for i := range z.Records {
		if err := z.Records[i].Validate(); err != nil {
			return domain.WrapEntity("record", z.Records[i].Key(), err)
		}
	}
	return nil
}
