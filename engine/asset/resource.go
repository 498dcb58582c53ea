// Package asset fetches scene, material, texture and shader files from disk or over http(s).
package asset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Resource wraps a streamable file or remote resource.
type Resource struct {
	io.ReadCloser
	url *url.URL
}

// Path returns the location this resource was opened from.
func (r *Resource) Path() string {
	if r.url.Scheme == "" {
		return r.url.Path
	}
	return r.url.String()
}

// IsRemote reports whether the resource is streamed over http/https.
func (r *Resource) IsRemote() bool {
	return r.url.Scheme != ""
}

// Open creates a new resource stream. If relTo is non-nil and location has no scheme,
// location is resolved against the directory containing relTo.
// The caller must close the returned resource.
//
// Parameters:
//   - ctx: context bounding remote fetches
//   - location: a file path or http(s) URL
//   - relTo: an optional resource to resolve relative locations against
//
// Returns:
//   - *Resource: the opened resource
//   - error: error if the location cannot be parsed or opened
func Open(ctx context.Context, location string, relTo *Resource) (*Resource, error) {
	u, err := Resolve(location, relTo)
	if err != nil {
		return nil, err
	}

	var reader io.ReadCloser
	switch u.Scheme {
	case "":
		reader, err = os.Open(filepath.Clean(u.Path))
		if err != nil {
			return nil, err
		}
	case "http", "https":
		resp, err := fetch(ctx, http.MethodGet, u)
		if err != nil {
			return nil, err
		}
		reader = resp.Body
	default:
		return nil, fmt.Errorf("resource: unsupported scheme '%s'", u.Scheme)
	}

	return &Resource{ReadCloser: reader, url: u}, nil
}

// ReadAll opens location and reads it to the end.
//
// Parameters:
//   - ctx: context bounding remote fetches
//   - location: a file path or http(s) URL
//
// Returns:
//   - []byte: the resource contents
//   - error: error if the resource cannot be opened or read
func ReadAll(ctx context.Context, location string) ([]byte, error) {
	res, err := Open(ctx, location, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	data, err := io.ReadAll(res)
	if err != nil {
		return nil, fmt.Errorf("resource: could not read '%s': %w", res.Path(), err)
	}
	return data, nil
}

// Exists checks that location can be fetched without reading its body.
//
// Parameters:
//   - ctx: context bounding remote checks
//   - location: a file path or http(s) URL
//
// Returns:
//   - error: nil if the resource exists
func Exists(ctx context.Context, location string) error {
	u, err := Resolve(location, nil)
	if err != nil {
		return err
	}
	switch u.Scheme {
	case "":
		info, err := os.Stat(filepath.Clean(u.Path))
		if err != nil {
			return err
		}
		if info.IsDir() {
			return fmt.Errorf("resource: '%s' is a directory", u.Path)
		}
		return nil
	case "http", "https":
		resp, err := fetch(ctx, http.MethodHead, u)
		if err != nil {
			return err
		}
		return resp.Body.Close()
	default:
		return fmt.Errorf("resource: unsupported scheme '%s'", u.Scheme)
	}
}

// Join resolves name under root, where root is a directory or a URL prefix.
// Names that carry their own scheme or are absolute paths are returned unchanged.
//
// Parameters:
//   - root: the directory or URL prefix
//   - name: the file name, possibly with subdirectories
//
// Returns:
//   - string: the joined location
func Join(root, name string) string {
	if isRemote(name) {
		return name
	}
	name = strings.ReplaceAll(name, `\`, `/`)
	if root == "" || filepath.IsAbs(filepath.FromSlash(name)) {
		return name
	}
	if isRemote(root) {
		if u, err := url.Parse(root); err == nil {
			u.Path = path.Join(u.Path, name)
			u.RawPath = ""
			return u.String()
		}
	}
	return filepath.Join(root, filepath.FromSlash(name))
}

// Resolve turns location into a URL. Only http:// and https:// prefixes are parsed as
// URLs; anything else is a file path taken literally, so '%', '?' and drive letters
// survive. Relative paths with relTo set are rebased onto the directory of relTo.
//
// Parameters:
//   - location: a file path or http(s) URL
//   - relTo: an optional resource to resolve against
//
// Returns:
//   - *url.URL: the resolved location
//   - error: error if an http(s) location is not a valid URL
func Resolve(location string, relTo *Resource) (*url.URL, error) {
	if isRemote(location) {
		u, err := url.Parse(location)
		if err != nil {
			return nil, fmt.Errorf("resource: invalid location '%s': %w", location, err)
		}
		return u, nil
	}

	p := strings.ReplaceAll(location, `\`, `/`)
	if relTo == nil || path.IsAbs(p) || filepath.IsAbs(filepath.FromSlash(p)) {
		return &url.URL{Path: p}, nil
	}

	base := *relTo.url
	if base.Scheme == "" {
		return &url.URL{Path: filepath.Join(filepath.Dir(base.Path), p)}, nil
	}
	base.Path = path.Join(path.Dir(base.Path), p)
	base.RawPath = ""
	base.RawQuery = ""
	base.Fragment = ""
	return &base, nil
}

// isRemote reports whether location starts with an http:// or https:// prefix.
func isRemote(location string) bool {
	for _, prefix := range []string{"http://", "https://"} {
		if len(location) >= len(prefix) && strings.EqualFold(location[:len(prefix)], prefix) {
			return true
		}
	}
	return false
}

func fetch(ctx context.Context, method string, u *url.URL) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("resource: could not fetch '%s': %w", u.String(), err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resource: could not fetch '%s': %w", u.String(), err)
	}
	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, fmt.Errorf("resource: could not fetch '%s': status %d", u.String(), resp.StatusCode)
	}
	return resp, nil
}
