// Copyright © 2018 One Concern

package opencloud

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// PublishMessage publishes a message to a topic of the messaging service
func (c *Client) PublishMessage(ctx context.Context, req *PublishMessageRequest) error {
	if req.Topic == "" {
		return errors.New("opencloud: topic is required")
	}
	body, err := json.Marshal(struct {
		Message string `json:"message"`
	}{Message: req.Message})
	if err != nil {
		return errors.Wrap(err, "opencloud: encode message")
	}
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	resp, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/messaging-service/v1/universes/%d/topics/%s", req.UniverseID, req.Topic),
		header: header,
		body:   body,
	})
	if err != nil {
		return err
	}
	return resp.Body.Close()
}
