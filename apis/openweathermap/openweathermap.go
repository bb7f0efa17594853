package openweathermap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cityweather/config"
	"cityweather/manager"
)

const successOK = "200"

func New(config config.Provider) (*openWeatherMap, error) {
	endpoint, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}
	if endpoint.Scheme != "http" && endpoint.Scheme != "https" || endpoint.Host == "" {
		return nil, fmt.Errorf("base url %q: expected an http(s) endpoint", config.BaseURL)
	}

	return &openWeatherMap{
		config: config,
		client: resty.New().SetTimeout(config.Timeout),
	}, nil
}

type openWeatherMap struct {
	config config.Provider
	client *resty.Client
}

// Get issues one request for the current weather of city. Failures are returned
// as *manager.LookupError.
func (o openWeatherMap) Get(ctx context.Context, city string) (manager.Result, error) {
	params := map[string]string{
		"q":     city,
		"appid": o.config.APIKey,
		"units": o.config.Units,
	}

	request := o.client.R().SetContext(ctx)
	request.SetQueryParams(params)

	response, err := request.Get(o.config.BaseURL)
	if err != nil {
		return manager.Result{}, manager.NewTransportError(err)
	}

	if response.StatusCode() >= http.StatusBadRequest {
		return manager.Result{}, manager.NewStatusError(response.StatusCode())
	}

	info := info{}
	if err = info.unmarshal(response.Body()); err != nil {
		return manager.Result{}, manager.NewDecodeError(fmt.Errorf("decode response: %w", err))
	}

	if info.Cod != successOK {
		return manager.Result{}, manager.NewLogicalError(info.Message)
	}

	return info.Result, nil
}

// code accepts the provider's "cod" field, which is sent either as a number or a string.
type code string

func (c *code) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(data, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = code(s)
		return nil
	}

	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = code(n.String())

	return nil
}

type info struct {
	manager.Result
	Cod     code
	Message string
}

func (i *info) unmarshal(data []byte) error {
	type result struct {
		Cod     code   `json:"cod"`
		Message string `json:"message"`
		Main    struct {
			Temp *float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
	}

	var r result

	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	i.Cod = r.Cod
	i.Message = r.Message
	i.Temperature = r.Main.Temp

	if len(r.Weather) > 0 {
		i.Description = cases.Title(language.English).String(r.Weather[0].Description)
		i.Condition = r.Weather[0].Main
	}

	return nil
}
