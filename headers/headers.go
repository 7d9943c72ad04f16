package headers

const (
	UserAgent     = "User-Agent"
	ContentType   = "Content-Type"
	ContentLength = "Content-Length"
	Authorization = "Authorization"
	Accept        = "Accept"
	CacheControl  = "Cache-Control"
)

const (
	ApplicationJSON = "application/json"
)

const (
	XRequestID          = "X-Request-ID"
	XShopifyAccessToken = "X-Shopify-Access-Token"
	XGenerator          = "X-Generator"
)
