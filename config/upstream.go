package config

import (
	"fmt"
	"strconv"

	"github.com/vektah/gqlparser/v2/ast"
)

// Upstream holds the @upstream options shared by every outgoing request.
type Upstream struct {
	BaseURL        *string  `json:"baseURL,omitempty" yaml:"baseURL,omitempty"`
	HTTPCache      *int     `json:"httpCache,omitempty" yaml:"httpCache,omitempty"`
	Timeout        *int     `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	ConnectTimeout *int     `json:"connectTimeout,omitempty" yaml:"connectTimeout,omitempty"`
	Proxy          *Proxy   `json:"proxy,omitempty" yaml:"proxy,omitempty"`
	AllowedHeaders []string `json:"allowedHeaders,omitempty" yaml:"allowedHeaders,omitempty"`
	Batch          *Batch   `json:"batch,omitempty" yaml:"batch,omitempty"`
}

// Proxy routes upstream requests through an intermediary.
type Proxy struct {
	URL string `json:"url" yaml:"url"`
}

// Batch groups upstream requests going to the same host.
type Batch struct {
	Delay   int      `json:"delay,omitempty" yaml:"delay,omitempty"`
	MaxSize int      `json:"maxSize,omitempty" yaml:"maxSize,omitempty"`
	Headers []string `json:"headers,omitempty" yaml:"headers,omitempty"`
}

func (u *Upstream) DirectiveName() string { return "upstream" }

func (u *Upstream) DirectiveArgs() []DirectiveArg {
	var args []DirectiveArg
	if len(u.AllowedHeaders) > 0 {
		args = append(args, DirectiveArg{"allowedHeaders", renderStrings(u.AllowedHeaders)})
	}
	if u.BaseURL != nil {
		args = append(args, DirectiveArg{"baseURL", renderString(*u.BaseURL)})
	}
	if u.Batch != nil {
		args = append(args, DirectiveArg{"batch", u.Batch.render()})
	}
	if u.ConnectTimeout != nil {
		args = append(args, DirectiveArg{"connectTimeout", strconv.Itoa(*u.ConnectTimeout)})
	}
	if u.HTTPCache != nil {
		args = append(args, DirectiveArg{"httpCache", strconv.Itoa(*u.HTTPCache)})
	}
	if u.Proxy != nil {
		args = append(args, DirectiveArg{"proxy", fmt.Sprintf("{url: %s}", renderString(u.Proxy.URL))})
	}
	if u.Timeout != nil {
		args = append(args, DirectiveArg{"timeout", strconv.Itoa(*u.Timeout)})
	}
	return args
}

func (b *Batch) render() string {
	out := "{"
	out += fmt.Sprintf("delay: %d", b.Delay)
	if len(b.Headers) > 0 {
		out += fmt.Sprintf(", headers: %s", renderStrings(b.Headers))
	}
	if b.MaxSize > 0 {
		out += fmt.Sprintf(", maxSize: %d", b.MaxSize)
	}
	return out + "}"
}

func upstreamFromDirective(d *ast.Directive) (*Upstream, error) {
	u := &Upstream{}
	if err := decodeStrings(d, "allowedHeaders", &u.AllowedHeaders); err != nil {
		return nil, err
	}
	if err := decodeStringPtr(d, "baseURL", &u.BaseURL); err != nil {
		return nil, err
	}
	if err := decodeIntPtr(d, "connectTimeout", &u.ConnectTimeout); err != nil {
		return nil, err
	}
	if err := decodeIntPtr(d, "httpCache", &u.HTTPCache); err != nil {
		return nil, err
	}
	if err := decodeIntPtr(d, "timeout", &u.Timeout); err != nil {
		return nil, err
	}
	if err := u.decodeBatch(d); err != nil {
		return nil, err
	}
	if err := u.decodeProxy(d); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *Upstream) decodeProxy(d *ast.Directive) error {
	arg := d.Arguments.ForName("proxy")
	if arg == nil {
		return nil
	}
	if arg.Value.Kind != ast.ObjectValue {
		return argTypeError(d, "proxy", "an object")
	}
	p := &Proxy{}
	for _, f := range arg.Value.Children {
		if f.Name != "url" || f.Value.Kind != ast.StringValue {
			return argTypeError(d, "proxy", "{url: String}")
		}
		p.URL = f.Value.Raw
	}
	u.Proxy = p
	return nil
}

func (u *Upstream) decodeBatch(d *ast.Directive) error {
	arg := d.Arguments.ForName("batch")
	if arg == nil {
		return nil
	}
	if arg.Value.Kind != ast.ObjectValue {
		return argTypeError(d, "batch", "an object")
	}
	b := &Batch{}
	for _, f := range arg.Value.Children {
		switch f.Name {
		case "delay":
			v, err := strconv.Atoi(f.Value.Raw)
			if err != nil {
				return argTypeError(d, "batch", "{delay: Int, headers: [String], maxSize: Int}")
			}
			b.Delay = v
		case "maxSize":
			v, err := strconv.Atoi(f.Value.Raw)
			if err != nil {
				return argTypeError(d, "batch", "{delay: Int, headers: [String], maxSize: Int}")
			}
			b.MaxSize = v
		case "headers":
			for _, c := range f.Value.Children {
				b.Headers = append(b.Headers, c.Value.Raw)
			}
		default:
			return argTypeError(d, "batch", "{delay: Int, headers: [String], maxSize: Int}")
		}
	}
	u.Batch = b
	return nil
}

// merge folds other into u, other winning on every option it sets.
func (u *Upstream) merge(other *Upstream) *Upstream {
	if u == nil {
		return other
	}
	if other == nil {
		return u
	}
	if other.BaseURL != nil {
		u.BaseURL = other.BaseURL
	}
	if other.HTTPCache != nil {
		u.HTTPCache = other.HTTPCache
	}
	if other.Timeout != nil {
		u.Timeout = other.Timeout
	}
	if other.ConnectTimeout != nil {
		u.ConnectTimeout = other.ConnectTimeout
	}
	if other.Proxy != nil {
		u.Proxy = other.Proxy
	}
	if other.Batch != nil {
		u.Batch = other.Batch
	}
	u.AllowedHeaders = mergeStrings(u.AllowedHeaders, other.AllowedHeaders)
	return u
}
