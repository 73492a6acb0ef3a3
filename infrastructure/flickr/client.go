package flickr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AzielCF/az-photofeed/core/config"
	"github.com/AzielCF/az-photofeed/domains/feed"
	pkgError "github.com/AzielCF/az-photofeed/pkg/error"
)

const (
	defaultTimeout = 15 * time.Second

	// extras requested on search so summaries can be built from one call.
	searchExtras = "description,date_upload,date_taken,owner_name,tags,views,url_m"

	// Flickr error code for a photo that does not exist (or is private).
	codePhotoNotFound = 1
)

// Client issues read-only requests against the Flickr REST endpoint. It holds
// a single http.Client whose connection pool is safe for concurrent lookups.
type Client struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a Client from the loaded configuration.
func NewClient(cfg config.FlickrConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		apiURL:     cfg.APIURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SearchPhotos calls flickr.photos.search with the normalized query.
func (c *Client) SearchPhotos(ctx context.Context, query feed.Query) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("text", query.SearchText)
	params.Set("tags", query.Tags)
	params.Set("sort", query.Sort)
	params.Set("per_page", strconv.Itoa(query.PerPage))
	params.Set("page", strconv.Itoa(query.Page))
	params.Set("extras", searchExtras)

	var out SearchResponse
	if err := c.do(ctx, "flickr.photos.search", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PhotoInfo calls flickr.photos.getInfo for a single photo.
func (c *Client) PhotoInfo(ctx context.Context, photoID string) (*PhotoInfoResponse, error) {
	params := url.Values{}
	params.Set("photo_id", photoID)

	var out PhotoInfoResponse
	if err := c.do(ctx, "flickr.photos.getInfo", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PhotoComments calls flickr.photos.comments.getList for a single photo.
func (c *Client) PhotoComments(ctx context.Context, photoID string) (*CommentsResponse, error) {
	params := url.Values{}
	params.Set("photo_id", photoID)

	var out CommentsResponse
	if err := c.do(ctx, "flickr.photos.comments.getList", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type statusHolder interface {
	status() apiStatus
}

// do performs a GET against the REST endpoint and decodes the JSON envelope.
// Transport failures and non-2xx responses come back as UpstreamError; a
// stat=fail envelope with the not-found code comes back as NotFoundError.
func (c *Client) do(ctx context.Context, method string, params url.Values, out statusHolder) error {
	params.Set("method", method)
	params.Set("api_key", c.apiKey)
	params.Set("format", "json")
	params.Set("nojsoncallback", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return pkgError.InternalServerError(fmt.Sprintf("failed to build flickr request: %v", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "az-photofeed")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Errorf("[FLICKR] %s request failed", method)
		return pkgError.UpstreamError("photo provider request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logrus.Errorf("[FLICKR] %s returned status %d: %s", method, resp.StatusCode, string(body))
		return pkgError.UpstreamError("photo provider returned an error")
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logrus.WithError(err).Errorf("[FLICKR] %s returned undecodable body", method)
		return pkgError.MalformedPayloadError("photo provider returned an unreadable response")
	}

	if st := out.status(); st.Stat == "fail" {
		if st.Code == codePhotoNotFound {
			return pkgError.NotFoundError("photo not found")
		}
		logrus.Errorf("[FLICKR] %s failed: code=%d message=%s", method, st.Code, st.Message)
		return pkgError.UpstreamError("photo provider rejected the request")
	}

	return nil
}
