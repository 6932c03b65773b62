package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Drolfothesgnir/bbforum/bbcode"
	"github.com/Drolfothesgnir/bbforum/content"
	mockdb "github.com/Drolfothesgnir/bbforum/db/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testBody = `{
	"version": 1,
	"sections": [{
		"id": "main",
		"title": "Main",
		"content": [
			{"type": "paragraph", "text": "[b]hi[/b] :)"},
			{"type": "quote", "format": "bbcode+html", "text": "<script>x</script>ok", "author": "Bob"},
			{"type": "divider"}
		]
	}]
}`

func TestRenderBody(t *testing.T) {
	userID := int64(3)

	testCases := []struct {
		name          string
		query         string
		body          string
		auth          bool
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: testBody,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetEmojiSettings(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp RenderBodyResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
				require.Equal(t, "pseudo-ast", resp.Schema)
				require.Equal(t, content.CurrentVersion, resp.Version)
				require.Len(t, resp.Sections, 1)
				require.Equal(t, "main", resp.Sections[0].ID)
				require.Equal(t,
					`<p><strong>hi</strong> <img class="emoji" src="/static/emoji/smile.png" alt=":)" title=":)"></p>`+
						"<blockquote>ok<footer>Bob</footer></blockquote>"+
						"<hr>",
					resp.Sections[0].HTML,
				)
			},
		},
		{
			name: "ViewerSettings",
			body: `{"version": 1, "sections": [{"id": "a", "content": [{"type": "paragraph", "text": ":)"}]}]}`,
			auth: true,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetEmojiSettings(gomock.Any(), userID).Times(1).
					Return([]bbcode.EmojiSetting{{Type: bbcode.EmojiSmile, Category: "cat", UserID: userID}}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.Contains(t, recorder.Body.String(), "/static/emoji/cat/smile.png")
			},
		},
		{
			name: "InvalidBody",
			body: `{"version": 1, "sections": []}`,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetEmojiSettings(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				resp, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrInvalidBody.Error(), resp.Error)
				require.Len(t, resp.Fields, 1)
				require.Equal(t, "body", resp.Fields[0].FieldName)
			},
		},
		{
			name:  "UnknownSchema",
			query: "?schema=prosemirror",
			body:  testBody,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetEmojiSettings(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				resp, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrInvalidParams.Error(), resp.Error)
				require.Equal(t, "schema", resp.Fields[0].FieldName)
			},
		},
		{
			name: "BodyTooLong",
			body: `{"version": 1, "sections": [{"id": "a", "content": [{"type": "paragraph", "text": "` +
				strings.Repeat("a", testConfig.MaxInputLength) + `"}]}]}`,
			buildStubs: func(store *mockdb.MockStore) {},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusRequestEntityTooLarge, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			service := newTestService(t, store, nil, nil)
			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(http.MethodPost, RenderBodyURL+tc.query, bytes.NewBufferString(tc.body))
			require.NoError(t, err)
			if tc.auth {
				setAuthorizationHeader(t, service.tokenMaker, authorizationTypeBearer, userID, "carol", time.Minute, request)
			}

			service.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
