package services

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUpstreamFetch is returned when the station directory cannot be
// fetched or decoded. Nothing is written to the database in that case.
var ErrUpstreamFetch = errors.New("station directory fetch failed")

// StationDescriptor is one entry of the upstream station directory.
// The source is inconsistent about types, so coordinates may arrive as
// JSON strings or numbers.
type StationDescriptor struct {
	Name      string     `json:"station_name"`
	Latitude  FlexString `json:"station_latitude"`
	Longitude FlexString `json:"station_longitude"`
	Territory string     `json:"territory_name"`
}

// FlexString decodes a JSON string, number or null into its raw text.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}
	*s = FlexString(data)
	return nil
}

// StationDirectoryClient fetches the station list from the remote
// directory. The upstream serves an outdated certificate chain, so
// verification is skipped; this mirrors how the endpoint has to be
// consumed in practice and is a known weakness.
type StationDirectoryClient struct {
	url    string
	client *http.Client
}

func NewStationDirectoryClient(url string, timeout time.Duration) *StationDirectoryClient {
	return &StationDirectoryClient{
		url: url,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
	}
}

// FetchStations retrieves and decodes the station directory. Any
// failure is reported as ErrUpstreamFetch.
func (d *StationDirectoryClient) FetchStations(ctx context.Context) ([]StationDescriptor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFetch, err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUpstreamFetch, resp.StatusCode)
	}

	var stations []StationDescriptor
	if err := json.NewDecoder(resp.Body).Decode(&stations); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFetch, err)
	}

	return stations, nil
}
