package service

import (
	"context"
	"strings"
	"testing"

	"distsn/adapters"
	"distsn/domain"
	"distsn/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(source *mock.InstanceSourceMock) (*InstanceListRenderer, *adapters.Element) {
	el := adapters.NewElement(domain.PlaceholderID)
	return NewInstanceListRenderer(source, el, log.NewNopLogger()), el
}

func TestNewInstanceListRenderer_Panics(t *testing.T) {
	el := adapters.NewElement(domain.PlaceholderID)
	assert.PanicsWithValue(t, "service.renderer.go: instance source is required", func() {
		NewInstanceListRenderer(nil, el, log.NewNopLogger())
	})
	assert.PanicsWithValue(t, "service.renderer.go: placeholder is required", func() {
		NewInstanceListRenderer(&mock.InstanceSourceMock{}, nil, log.NewNopLogger())
	})
	assert.PanicsWithValue(t, "service.renderer.go: logger is required", func() {
		NewInstanceListRenderer(&mock.InstanceSourceMock{}, el, nil)
	})
}

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Example Social", want: "Example Social"},
		{name: "ampersand", in: "A & B", want: "A &amp; B"},
		{name: "tags", in: "<b>bold</b>", want: "&lt;b&gt;bold&lt;/b&gt;"},
		{name: "existing entity is escaped again", in: "&lt;", want: "&amp;lt;"},
		{name: "quotes untouched", in: `"it's"`, want: `"it's"`},
		{name: "all three", in: "<&>", want: "&lt;&amp;&gt;"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeHTML(tt.in))
		})
	}
}

func TestInstanceListRenderer_Render(t *testing.T) {
	tests := []struct {
		name      string
		instances []domain.InstanceDescriptor
		want      string
	}{
		{
			name:      "title escaped, missing thumbnail",
			instances: []domain.InstanceDescriptor{{Domain: "a.example", Title: "A & B"}},
			want: `<p><a href="instance-preview.html?a.example" target="distsn-instance-preview">` +
				`<img class="avatar" src="missing.svg"></a>` +
				`<a href="instance-preview.html?a.example" target="distsn-instance-preview">A &amp; B</a></p>`,
		},
		{
			name:      "no title falls back to raw domain, thumbnail verbatim",
			instances: []domain.InstanceDescriptor{{Domain: "b<&>.example", Thumbnail: "https://b.example/t.png?x=1&y=2"}},
			want: `<p><a href="instance-preview.html?b<&>.example" target="distsn-instance-preview">` +
				`<img class="avatar" src="https://b.example/t.png?x=1&y=2"></a>` +
				`<a href="instance-preview.html?b<&>.example" target="distsn-instance-preview">b<&>.example</a></p>`,
		},
		{
			name:      "empty list",
			instances: []domain.InstanceDescriptor{},
			want:      "",
		},
		{
			name:      "nil list",
			instances: nil,
			want:      "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, el := newTestRenderer(&mock.InstanceSourceMock{})
			el.SetInnerHTML("<p>previous</p>")

			r.Render(tt.instances)
			assert.Equal(t, tt.want, el.InnerHTML())
		})
	}
}

func TestInstanceListRenderer_Render_KeepsOrder(t *testing.T) {
	instances := []domain.InstanceDescriptor{
		{Domain: "c.example"},
		{Domain: "a.example", Title: "Alpha"},
		{Domain: "b.example", Thumbnail: "b.png"},
	}
	r, el := newTestRenderer(&mock.InstanceSourceMock{})
	r.Render(instances)

	html := el.InnerHTML()
	assert.Equal(t, len(instances), strings.Count(html, "<p>"))
	assert.Equal(t, len(instances), strings.Count(html, "</p>"))

	c := strings.Index(html, "?c.example")
	a := strings.Index(html, "?a.example")
	b := strings.Index(html, "?b.example")
	require.True(t, c >= 0 && a >= 0 && b >= 0)
	assert.Less(t, c, a)
	assert.Less(t, a, b)
}

func TestInstanceListRenderer_OnResponse(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		prior       string
		wantErr     bool
		wantContent string
	}{
		{
			name:   "200 renders",
			status: 200,
			body:   `[{"domain":"a.example","title":"A & B"}]`,
			wantContent: `<p><a href="instance-preview.html?a.example" target="distsn-instance-preview">` +
				`<img class="avatar" src="missing.svg"></a>` +
				`<a href="instance-preview.html?a.example" target="distsn-instance-preview">A &amp; B</a></p>`,
		},
		{
			name:        "200 empty array clears placeholder",
			status:      200,
			body:        `[]`,
			prior:       "<p>stale</p>",
			wantContent: "",
		},
		{
			name:        "null and empty optional fields fall back",
			status:      200,
			body:        `[{"domain":"n.example","title":null,"thumbnail":""}]`,
			wantContent: `<p><a href="instance-preview.html?n.example" target="distsn-instance-preview"><img class="avatar" src="missing.svg"></a><a href="instance-preview.html?n.example" target="distsn-instance-preview">n.example</a></p>`,
		},
		{
			name:        "503 leaves placeholder empty",
			status:      503,
			body:        `[{"domain":"a.example"}]`,
			wantContent: "",
		},
		{
			name:        "404 leaves prior content",
			status:      404,
			body:        `not json at all`,
			prior:       "<p>prior</p>",
			wantContent: "<p>prior</p>",
		},
		{
			name:        "malformed JSON is returned and nothing rendered",
			status:      200,
			body:        `[{"domain":`,
			prior:       "<p>prior</p>",
			wantErr:     true,
			wantContent: "<p>prior</p>",
		},
		{
			name:        "null body is malformed",
			status:      200,
			body:        `null`,
			prior:       "<p>prior</p>",
			wantErr:     true,
			wantContent: "<p>prior</p>",
		},
		{
			name:        "list of null is malformed",
			status:      200,
			body:        `[null]`,
			wantErr:     true,
			wantContent: "",
		},
		{
			name:        "null element is malformed",
			status:      200,
			body:        `[{"domain":"a.example"},null]`,
			prior:       "<p>prior</p>",
			wantErr:     true,
			wantContent: "<p>prior</p>",
		},
		{
			name:        "object instead of array is malformed",
			status:      200,
			body:        `{"instances":[]}`,
			wantErr:     true,
			wantContent: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, el := newTestRenderer(&mock.InstanceSourceMock{})
			el.SetInnerHTML(tt.prior)

			err := r.OnResponse(tt.status, []byte(tt.body))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "onResponse failed to parse instances")
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantContent, el.InnerHTML())
		})
	}
}

func TestInstanceListRenderer_Initialize(t *testing.T) {
	t.Run("one fetch then render", func(t *testing.T) {
		source := &mock.InstanceSourceMock{
			FetchFunc: func(ctx context.Context) (int, []byte, error) {
				return 200, []byte(`[{"domain":"a.example"},{"domain":"b.example","title":"B"}]`), nil
			},
		}
		r, el := newTestRenderer(source)

		require.NoError(t, r.Initialize(context.Background()))
		assert.Len(t, source.FetchCalls(), 1)
		assert.Equal(t, 2, strings.Count(el.InnerHTML(), "<p>"))
		assert.Contains(t, el.InnerHTML(), `target="distsn-instance-preview">B</a>`)
	})

	t.Run("transport error is returned", func(t *testing.T) {
		source := &mock.InstanceSourceMock{
			FetchFunc: func(ctx context.Context) (int, []byte, error) {
				return 0, nil, assert.AnError
			},
		}
		r, el := newTestRenderer(source)

		err := r.Initialize(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Empty(t, el.InnerHTML())
	})

	t.Run("non-200 is silent", func(t *testing.T) {
		source := &mock.InstanceSourceMock{
			FetchFunc: func(ctx context.Context) (int, []byte, error) {
				return 503, []byte("busy"), nil
			},
		}
		r, el := newTestRenderer(source)

		require.NoError(t, r.Initialize(context.Background()))
		assert.Len(t, source.FetchCalls(), 1)
		assert.Empty(t, el.InnerHTML())
	})
}
