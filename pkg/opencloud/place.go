// Copyright © 2018 One Concern

package opencloud

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ContentTypeForPlace returns the content type expected by the API for a place file
func ContentTypeForPlace(pth string) string {
	if strings.EqualFold(filepath.Ext(pth), ".rbxlx") {
		return "application/xml"
	}
	return "application/octet-stream"
}

// PublishPlace uploads a new version of a place.
//
// Uploads are not retried.
func (c *Client) PublishPlace(ctx context.Context, req *PublishPlaceRequest) (*PublishPlaceResponse, error) {
	if len(req.Content) == 0 {
		return nil, errors.Errorf("opencloud: empty place file for place %d", req.PlaceID)
	}
	q := *req
	if q.VersionType == "" {
		q.VersionType = Published
	}
	contentType := q.ContentType
	if contentType == "" {
		contentType = ContentTypeForPlace("")
	}
	header := make(http.Header)
	header.Set("Content-Type", contentType)

	var res PublishPlaceResponse
	err := c.doJSON(withoutRetry(ctx), request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/universes/v1/%d/places/%d/versions", req.UniverseID, req.PlaceID),
		query:  &q,
		header: header,
		body:   req.Content,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
