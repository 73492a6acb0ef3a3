package usecase

import (
	"strconv"
	"strings"

	"github.com/AzielCF/az-photofeed/domains/feed"
	"github.com/AzielCF/az-photofeed/infrastructure/flickr"
	pkgError "github.com/AzielCF/az-photofeed/pkg/error"
)

// normalizeSearch maps the provider's search envelope into the stable output
// schema. A missing photos block fails fast; zero results is a valid page
// with an empty (non-nil) photo slice.
func normalizeSearch(raw *flickr.SearchResponse) (feed.FeedPage, error) {
	if raw == nil || raw.Photos == nil {
		return feed.FeedPage{}, pkgError.MalformedPayloadError("search response missing photos block")
	}

	photos := make([]feed.PhotoSummary, 0, len(raw.Photos.Photo))
	for _, item := range raw.Photos.Photo {
		if item.ID == "" {
			return feed.FeedPage{}, pkgError.MalformedPayloadError("search response photo missing id")
		}
		photos = append(photos, feed.PhotoSummary{
			ID:          item.ID,
			Title:       item.Title,
			Media:       item.URLMedium,
			DateTaken:   item.DateTaken,
			Description: item.Description.Content,
			Published:   item.DateUpload,
			Author:      item.OwnerName,
			Views:       parseViews(item.Views),
			Tags:        splitTags(item.Tags),
		})
	}

	return feed.FeedPage{
		Pagination: feed.Pagination{
			Page:    raw.Photos.Page,
			Pages:   raw.Photos.Pages,
			PerPage: raw.Photos.PerPage,
			Total:   raw.Photos.Total,
		},
		Photos: photos,
	}, nil
}

// normalizePhoto joins the info and comments envelopes into one detail
// object. Expected fields that are absent fail fast instead of propagating
// zero values.
func normalizePhoto(rawInfo *flickr.PhotoInfoResponse, rawComments *flickr.CommentsResponse) (feed.PhotoDetail, error) {
	if rawInfo == nil || rawInfo.Photo == nil {
		return feed.PhotoDetail{}, pkgError.MalformedPayloadError("photo info response missing photo block")
	}
	photo := rawInfo.Photo
	if photo.ID == "" {
		return feed.PhotoDetail{}, pkgError.MalformedPayloadError("photo info response missing id")
	}
	if len(photo.URLs.URL) == 0 {
		return feed.PhotoDetail{}, pkgError.MalformedPayloadError("photo info response missing urls")
	}

	// Prefer the owner's real name; fall back to username.
	author := photo.Owner.RealName
	if author == "" {
		author = photo.Owner.Username
	}

	tags := make([]string, 0, len(photo.Tags.Tag))
	for _, tag := range photo.Tags.Tag {
		tags = append(tags, tag.Raw)
	}

	// A photo with no comments arrives without a comment list; that is an
	// empty thread, not a malformed payload.
	var rawThread []flickr.PhotoComment
	if rawComments != nil && rawComments.Comments != nil {
		rawThread = rawComments.Comments.Comment
	}
	comments := make([]feed.Comment, 0, len(rawThread))
	for _, c := range rawThread {
		comments = append(comments, feed.Comment{
			ID:          c.ID,
			Author:      c.AuthorName,
			Content:     c.Content,
			DateCreated: c.DateCreate,
		})
	}

	return feed.PhotoDetail{
		PhotoSummary: feed.PhotoSummary{
			ID:          photo.ID,
			Title:       photo.Title.Content,
			Media:       photo.URLs.URL[0].Content,
			DateTaken:   photo.Dates.Taken,
			Description: photo.Description.Content,
			Published:   photo.Dates.Posted,
			Author:      author,
			Views:       parseViews(photo.Views),
			Tags:        tags,
		},
		Comments: comments,
	}, nil
}

// splitTags turns the provider's whitespace-separated tag string into a
// sequence, dropping empty tokens from doubled or trailing spaces. An absent
// tag field yields an empty slice, never nil.
func splitTags(raw string) []string {
	tags := strings.Fields(raw)
	if tags == nil {
		return []string{}
	}
	return tags
}

// parseViews tolerates the provider sending view counts as strings; an
// unparsable count is reported as zero rather than failing the lookup.
func parseViews(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
