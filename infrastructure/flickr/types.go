package flickr

// Raw provider payload shapes. Field names are bit-exact against the Flickr
// REST envelopes; normalization into the stable output schema happens in the
// feed usecase, never here.

type apiStatus struct {
	Stat    string `json:"stat"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (s apiStatus) status() apiStatus { return s }

type Content struct {
	Content string `json:"_content"`
}

// SearchResponse is the flickr.photos.search envelope.
type SearchResponse struct {
	apiStatus
	Photos *SearchPhotos `json:"photos"`
}

type SearchPhotos struct {
	Page    int           `json:"page"`
	Pages   int           `json:"pages"`
	PerPage int           `json:"perpage"`
	Total   int           `json:"total"`
	Photo   []SearchPhoto `json:"photo"`
}

type SearchPhoto struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	URLMedium   string  `json:"url_m"`
	DateTaken   string  `json:"datetaken"`
	DateUpload  string  `json:"dateupload"`
	OwnerName   string  `json:"ownername"`
	Views       string  `json:"views"`
	Tags        string  `json:"tags"`
	Description Content `json:"description"`
}

// PhotoInfoResponse is the flickr.photos.getInfo envelope.
type PhotoInfoResponse struct {
	apiStatus
	Photo *PhotoInfo `json:"photo"`
}

type PhotoInfo struct {
	ID          string     `json:"id"`
	Title       Content    `json:"title"`
	Description Content    `json:"description"`
	Views       string     `json:"views"`
	Owner       PhotoOwner `json:"owner"`
	Dates       PhotoDates `json:"dates"`
	URLs        PhotoURLs  `json:"urls"`
	Tags        PhotoTags  `json:"tags"`
}

type PhotoOwner struct {
	Username string `json:"username"`
	RealName string `json:"realname"`
}

type PhotoDates struct {
	Posted string `json:"posted"`
	Taken  string `json:"taken"`
}

type PhotoURLs struct {
	URL []Content `json:"url"`
}

type PhotoTags struct {
	Tag []PhotoTag `json:"tag"`
}

type PhotoTag struct {
	ID  string `json:"id"`
	Raw string `json:"raw"`
}

// CommentsResponse is the flickr.photos.comments.getList envelope.
type CommentsResponse struct {
	apiStatus
	Comments *PhotoComments `json:"comments"`
}

type PhotoComments struct {
	PhotoID string         `json:"photo_id"`
	Comment []PhotoComment `json:"comment"`
}

type PhotoComment struct {
	ID         string `json:"id"`
	AuthorName string `json:"authorname"`
	DateCreate string `json:"datecreate"`
	Content    string `json:"_content"`
}
