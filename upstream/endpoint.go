package upstream

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gqlbridge/gqlbridge/config"
)

const defaultEndpointFormat = "admin/api/%s/graphql.json"

var errEndpointConfig = errors.New("Invalid GraphQLEndpoint configuration: endpoint is not an absolute URL and no valid store_url is configured")

// ResolveEndpoint turns the upstream configuration into the absolute URL
// queries are POSTed to. An absolute graphql_endpoint wins outright;
// otherwise the endpoint (or the conventional admin API path) is
// resolved against store_url.
func ResolveEndpoint(conf config.UpstreamConfig) (string, error) {
	endpoint := strings.TrimSpace(conf.GraphQLEndpoint)
	if endpoint == "" {
		version := strings.TrimSpace(conf.APIVersion)
		if version == "" {
			version = config.Default.Upstream.APIVersion
		}
		endpoint = fmt.Sprintf(defaultEndpointFormat, version)
	}

	if u, err := url.Parse(endpoint); err == nil && u.IsAbs() {
		return endpoint, nil
	}

	base, err := url.Parse(strings.TrimSpace(conf.StoreURL))
	if err != nil || !base.IsAbs() {
		return "", errEndpointConfig
	}

	ref, err := url.Parse(endpoint)
	if err != nil {
		return "", errEndpointConfig
	}

	return base.ResolveReference(ref).String(), nil
}
