// Package client is the Go consumer of the CUBE API. It mirrors the
// behavior of the admin frontend: fixed request timeout, localized messages
// keyed on the HTTP status, and a per-client in-flight flag that swallows
// duplicate submissions while a request is outstanding.
package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Capryc0rne/CUBE/internal/dto"
)

const requestTimeout = 10 * time.Second

const (
	MsgDeleteSuccess   = "Catégorie supprimée avec succès"
	MsgDeleteForbidden = "Vous n'êtes pas autorisé à supprimer cette catégorie"
	MsgDeleteNotFound  = "Catégorie introuvable"
	MsgDeleteError     = "Erreur lors de la suppression de la catégorie"
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client

	deleting atomic.Bool
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// DeleteCategory issues the delete call and returns the localized message to
// surface, plus whether the deletion succeeded. While a call is outstanding,
// further calls are no-ops. On success the caller-supplied refresh callback
// runs so the owning view can reload its list. Raw errors are logged, never
// returned.
func (c *Client) DeleteCategory(id uint, refresh func()) (string, bool) {
	if !c.deleting.CompareAndSwap(false, true) {
		return "", false
	}
	defer c.deleting.Store(false)

	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/category/delete/%d", c.baseURL, id), nil)
	if err != nil {
		logrus.WithError(err).Error("building delete request failed")
		return MsgDeleteError, false
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// No response at all: network failure or the 10s timeout fired.
		logrus.WithError(err).Error("delete request failed")
		return MsgDeleteError, false
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		if refresh != nil {
			refresh()
		}
		return MsgDeleteSuccess, true
	case http.StatusForbidden:
		return MsgDeleteForbidden, false
	case http.StatusNotFound:
		return MsgDeleteNotFound, false
	default:
		logrus.WithField("status", resp.StatusCode).Error("unexpected delete response")
		return MsgDeleteError, false
	}
}

// FetchCountries retrieves the country reference list.
func (c *Client) FetchCountries() ([]dto.CountryDetail, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/countries", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching countries: unexpected status %d", resp.StatusCode)
	}

	var payload struct {
		Countries []dto.CountryDetail `json:"countries"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload.Countries, nil
}
