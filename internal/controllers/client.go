package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type ClientController struct {
	client *http.Client
	logger *logrus.Logger
}

func NewClientController(
	client *http.Client,
	logger *logrus.Logger,
) *ClientController {
	return &ClientController{
		client: client,
		logger: logger,
	}
}

var ErrMarketNotFound = errors.New("market not found")

// ErrStruct is the error body Garantex returns on 4xx.
type ErrStruct struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *ClientController) Send(ctx context.Context, method string, url *url.URL, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, url.Path)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.
			WithField("status", resp.StatusCode).
			WithField("path", url.Path).
			Debug(string(out))

		if resp.StatusCode == http.StatusNotFound {
			return nil, ErrMarketNotFound
		}

		if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity {
			var errMsg ErrStruct
			if err := json.Unmarshal(out, &errMsg); err == nil && errMsg.Error.Message != "" {
				return nil, fmt.Errorf("%s Err:%+v", "Unknown error", errMsg.Error)
			}
		}

		return nil, errors.New(fmt.Sprintf("statusCode %d; resp %s;", resp.StatusCode, out))
	}

	return out, nil
}
