/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	specs "github.com/macaroni-os/jessica/pkg/specs"

	rguard "github.com/geaaru/rest-guard/pkg/guard"
	rgspecs "github.com/geaaru/rest-guard/pkg/specs"
	"github.com/pkg/errors"
)

// HttpLoader reads templates over HTTP. Relative paths are requested from
// BaseUrl, absolute http(s) URLs are fetched as they are.
type HttpLoader struct {
	*LoaderCommon

	Guard   *rguard.RestGuard
	BaseUrl string
	Ssl     bool
	Retries int
}

func NewHttpLoader(c *specs.JessicaConfig, opts map[string]string) (*HttpLoader, error) {
	rconfig := rgspecs.NewConfig()
	if ua := opts["http-user-agent"]; ua != "" {
		rconfig.UserAgent = ua
	}
	if t := opts["http-timeout"]; t != "" {
		timeout, err := strconv.Atoi(t)
		if err != nil {
			return nil, fmt.Errorf("invalid http-timeout %s", t)
		}
		rconfig.ReqsTimeout = timeout
	}

	guard, err := rguard.NewRestGuard(rconfig)
	if err != nil {
		return nil, err
	}

	ans := &HttpLoader{
		LoaderCommon: NewLoaderCommon(c),
		Guard:        guard,
		BaseUrl:      opts["http-base-url"],
		Ssl:          opts["http-ssl"] != "false",
	}

	if r := opts["http-retries"]; r != "" {
		ans.Retries, err = strconv.Atoi(r)
		if err != nil {
			return nil, fmt.Errorf("invalid http-retries %s", r)
		}
	}

	return ans, nil
}

func (l *HttpLoader) GetType() string { return "http" }

// service returns the rest service and the request path for f.
func (l *HttpLoader) service(f string) (*rgspecs.RestService, string, error) {
	host := l.BaseUrl
	ssl := l.Ssl
	reqPath := f

	if strings.HasPrefix(f, "http://") || strings.HasPrefix(f, "https://") {
		u, err := url.Parse(f)
		if err != nil {
			return nil, "", err
		}
		host = u.Host
		ssl = u.Scheme == "https"
		reqPath = u.EscapedPath()
	} else if host == "" {
		return nil, "", fmt.Errorf("no base url configured to fetch %s", f)
	}

	service := rgspecs.NewRestService(host)
	service.Retries = l.Retries
	service.AddNode(rgspecs.NewRestNode(host, host, ssl))

	return service, reqPath, nil
}

// ReadFile fetches the template. The context is not propagated to the
// guard, which owns its request timeouts.
func (l *HttpLoader) ReadFile(_ context.Context, f string) (string, error) {
	service, reqPath, err := l.service(f)
	if err != nil {
		return "", err
	}

	t := service.GetTicket()
	defer t.Rip()

	_, err = l.Guard.CreateRequest(t, "GET", reqPath)
	if err != nil {
		return "", err
	}

	err = l.Guard.Do(t)
	if err != nil {
		statusCode := t.GetResponseStatusCode(500)
		if statusCode == http.StatusNotFound {
			return "", &notFound{path: f, cause: err}
		}
		return "", errors.Wrapf(err, "error on fetch %s (%d)", f, statusCode)
	}

	if t.Response.Body == nil {
		return "", fmt.Errorf("%s - Received invalid response body", f)
	}

	data, err := io.ReadAll(t.Response.Body)
	if err != nil {
		return "", errors.Wrapf(err, "error on read response of %s", f)
	}

	l.Logger.Debug(fmt.Sprintf(":globe_with_meridians:Fetched %s (%d bytes)", f, len(data)))

	return toText(f, data)
}
