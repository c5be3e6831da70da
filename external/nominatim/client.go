package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

const logPrefix = "nominatim"

type QueryResult struct {
	PlaceID     int     `json:"place_id"`
	OSMType     string  `json:"osm_type"`
	OSMID       int     `json:"osm_id"`
	Latitude    float64 `json:"lat,string"`
	Longitude   float64 `json:"lon,string"`
	DisplayName string  `json:"display_name"`
	Class       string  `json:"class"`
	Type        string  `json:"type"`
}

type ReverseAddress struct {
	Road     string `json:"road"`
	City     string `json:"city"`
	Town     string `json:"town"`
	Village  string `json:"village"`
	County   string `json:"county"`
	State    string `json:"state"`
	Country  string `json:"country"`
	Postcode string `json:"postcode"`
}

// Locality returns the most specific populated place name.
func (a ReverseAddress) Locality() string {
	switch {
	case a.City != "":
		return a.City
	case a.Town != "":
		return a.Town
	case a.Village != "":
		return a.Village
	default:
		return a.County
	}
}

type ReverseResult struct {
	PlaceID     int            `json:"place_id"`
	DisplayName string         `json:"display_name"`
	Address     ReverseAddress `json:"address"`
	Error       string         `json:"error"`
}

type NominatimClient struct {
	endpoint  string
	userAgent string
	client    *http.Client
}

func New(endpoint, userAgent string) *NominatimClient {
	return &NominatimClient{
		endpoint:  endpoint,
		userAgent: userAgent,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Query searches places by free text.
func (n *NominatimClient) Query(ctx context.Context, query string) ([]QueryResult, error) {
	var result []QueryResult
	if err := n.get(ctx, "search", url.Values{
		"q":      []string{query},
		"format": []string{"json"},
	}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Reverse looks up the address of a coordinate.
func (n *NominatimClient) Reverse(ctx context.Context, lat, lon float64) (*ReverseResult, error) {
	var result ReverseResult
	if err := n.get(ctx, "reverse", url.Values{
		"lat":            []string{strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":            []string{strconv.FormatFloat(lon, 'f', -1, 64)},
		"format":         []string{"jsonv2"},
		"addressdetails": []string{"1"},
	}, &result); err != nil {
		return nil, err
	}

	if result.Error != "" {
		return nil, fmt.Errorf("nominatim: %s", result.Error)
	}
	return &result, nil
}

func (n *NominatimClient) get(ctx context.Context, path string, values url.Values, v interface{}) error {
	q := url.URL{
		Path:     path,
		RawQuery: values.Encode(),
	}

	reqString := fmt.Sprintf("%s/%s", n.endpoint, q.String())
	log.WithField("prefix", logPrefix).WithField("req", reqString).Debug("request from nominatim")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqString, nil)
	if err != nil {
		return err
	}
	if n.userAgent != "" {
		req.Header.Set("User-Agent", n.userAgent)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	dumpBytes, err := httputil.DumpResponse(resp, true)
	if err != nil {
		log.WithField("prefix", logPrefix).WithError(err).Error("fail to dump response")
	}

	if resp.StatusCode != http.StatusOK {
		log.WithField("prefix", logPrefix).WithField("resp", string(dumpBytes)).Error("error response from nominatim")
		return fmt.Errorf("fail to query nominatim %s", path)
	}

	log.WithField("prefix", logPrefix).WithField("resp", string(dumpBytes)).Debug("response from nominatim")

	return json.NewDecoder(resp.Body).Decode(v)
}
