package searchui_test

import (
	"checkups/internal/searchui"
	mocksearchui "checkups/internal/searchui/mock"
	"checkups/pkg/domain"
	"checkups/pkg/logger"
	"checkups/pkg/searchclient"
	"checkups/pkg/serrors"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

// recorder collects observed states.
type recorder struct {
	mu     sync.Mutex
	states []searchui.State
}

func (r *recorder) observe(s searchui.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

func (r *recorder) all() []searchui.State {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]searchui.State(nil), r.states...)
}

func newController(t *testing.T) (*searchui.Controller, *mocksearchui.MockFetcher, *recorder) {
	t.Helper()

	ctrl := gomock.NewController(t)
	fetcher := mocksearchui.NewMockFetcher(ctrl)
	rec := &recorder{}

	return searchui.New(fetcher, searchui.WithObserver(rec.observe)), fetcher, rec
}

var (
	apollo = domain.Package{Hospital: "Apollo", Price: domain.NumberPrice(1500), Description: "Full body", Features: []string{"CBC", "ECG"}}
	fortis = domain.Package{Hospital: "Fortis", Price: domain.TextPrice("2,000"), Features: []string{}}
)

func TestSearch_EmptyQuery(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		c, _, rec := newController(t)
		c.SetQuery(q)
		c.Search(context.Background())

		s := c.State()
		require.False(t, s.Loading)
		require.Equal(t, searchui.PanelError{Message: searchui.MessageEmptyQuery}, s.Panel)
		for _, observed := range rec.all() {
			require.False(t, observed.Loading, "loading must never be shown for an empty query")
		}
	}
}

func TestSearch_TrimsQuery(t *testing.T) {
	c, fetcher, _ := newController(t)
	fetcher.EXPECT().Search(gomock.Any(), domain.Query("basic checkup")).Return(domain.Success(apollo), nil)

	c.SetQuery("  basic checkup \n")
	c.Search(context.Background())

	require.Equal(t, "  basic checkup \n", c.State().Query)
}

func TestSearch_LoadingLifecycle(t *testing.T) {
	tests := []struct {
		name   string
		result domain.SearchResult
		err    error
		panel  searchui.Panel
	}{
		{
			name:   "results",
			result: domain.Success(apollo, fortis),
			panel:  searchui.PanelResults{Packages: []domain.Package{apollo, fortis}},
		},
		{
			name:   "empty",
			result: domain.Success(),
			panel:  searchui.PanelEmpty{},
		},
		{
			name:   "failure result",
			result: domain.Failure("model unavailable"),
			panel:  searchui.PanelError{Message: "model unavailable"},
		},
		{
			name:  "status error",
			err:   &searchclient.StatusError{Status: 500, Message: searchclient.FallbackMessage},
			panel: searchui.PanelError{Message: "Failed to get response from API"},
		},
		{
			name:  "semantic error",
			err:   serrors.With(serrors.ErrTimeout, "Request timed out. Please try again."),
			panel: searchui.PanelError{Message: "Request timed out. Please try again."},
		},
		{
			name:  "transport error",
			err:   errors.New("connection refused"),
			panel: searchui.PanelError{Message: "connection refused"},
		},
		{
			name:  "error without message",
			err:   errors.New(""),
			panel: searchui.PanelError{Message: searchui.MessageFetchFailed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, fetcher, rec := newController(t)
			fetcher.EXPECT().
				Search(gomock.Any(), domain.Query("checkup")).
				DoAndReturn(func(context.Context, domain.Query) (domain.SearchResult, error) {
					s := c.State()
					require.True(t, s.Loading)
					require.Equal(t, searchui.PanelNone{}, s.Panel)

					return tt.result, tt.err
				})

			c.SetQuery("checkup")
			c.Search(context.Background())

			s := c.State()
			require.False(t, s.Loading)
			require.Equal(t, tt.panel, s.Panel)

			states := rec.all()
			require.Len(t, states, 3)
			require.Equal(t, searchui.State{Query: "checkup", Panel: searchui.PanelNone{}}, states[0])
			require.True(t, states[1].Loading)
			require.Equal(t, searchui.PanelNone{}, states[1].Panel)
			require.Equal(t, s, states[2])
		})
	}
}

func TestSearch_ClearsPreviousResults(t *testing.T) {
	c, fetcher, rec := newController(t)
	c.DisplayResults(domain.Success(apollo))

	fetcher.EXPECT().Search(gomock.Any(), gomock.Any()).Return(domain.Success(fortis), nil)
	c.SetQuery("next")
	c.Search(context.Background())

	states := rec.all()
	require.Equal(t, searchui.PanelNone{}, states[2].Panel)
	require.True(t, states[2].Loading)
	require.Equal(t, searchui.PanelResults{Packages: []domain.Package{fortis}}, c.State().Panel)
}

func TestSearch_StaleResponseIsDropped(t *testing.T) {
	c, fetcher, rec := newController(t)

	started := make(chan struct{})
	release := make(chan struct{})
	fetcher.EXPECT().
		Search(gomock.Any(), domain.Query("first")).
		DoAndReturn(func(context.Context, domain.Query) (domain.SearchResult, error) {
			close(started)
			<-release

			return domain.Success(apollo), nil
		})
	fetcher.EXPECT().Search(gomock.Any(), domain.Query("second")).Return(domain.Success(fortis), nil)

	c.SetQuery("first")
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Search(context.Background())
	}()
	<-started

	c.SetQuery("second")
	c.Search(context.Background())

	latest := c.State()
	require.False(t, latest.Loading)
	require.Equal(t, uint64(2), latest.Seq)
	require.Equal(t, searchui.PanelResults{Packages: []domain.Package{fortis}}, latest.Panel)

	observedBefore := len(rec.all())
	close(release)
	<-done

	require.Equal(t, latest, c.State())
	require.Len(t, rec.all(), observedBefore, "stale response must not cause a transition")
	for _, s := range rec.all() {
		if r, ok := s.Panel.(searchui.PanelResults); ok {
			require.NotEqual(t, "Apollo", r.Packages[0].Hospital)
		}
	}
}

func TestSearch_EmptyQuerySupersedesInflight(t *testing.T) {
	c, fetcher, _ := newController(t)

	started := make(chan struct{})
	release := make(chan struct{})
	fetcher.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.Query) (domain.SearchResult, error) {
			close(started)
			<-release

			return domain.Success(apollo), nil
		})

	c.SetQuery("first")
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Search(context.Background())
	}()
	<-started

	c.SetQuery(" ")
	c.Search(context.Background())
	close(release)
	<-done

	s := c.State()
	require.False(t, s.Loading)
	require.Equal(t, searchui.PanelError{Message: searchui.MessageEmptyQuery}, s.Panel)
}

func TestSetFilter(t *testing.T) {
	for _, f := range domain.Filters() {
		t.Run(string(f), func(t *testing.T) {
			phrase, ok := f.Phrase()
			require.True(t, ok)

			c, fetcher, _ := newController(t)
			fetcher.EXPECT().Search(gomock.Any(), domain.Query(phrase)).Return(domain.Success(apollo), nil)

			require.NoError(t, c.SetFilter(context.Background(), string(f)))
			require.Equal(t, phrase, c.State().Query)
			require.Equal(t, searchui.PanelResults{Packages: []domain.Package{apollo}}, c.State().Panel)
		})
	}

	t.Run("known phrases", func(t *testing.T) {
		c, fetcher, _ := newController(t)
		fetcher.EXPECT().
			Search(gomock.Any(), domain.Query("Find comprehensive health checkup packages for elderly people")).
			Return(domain.Success(), nil)

		require.NoError(t, c.SetFilter(context.Background(), "elderly"))
	})

	t.Run("unknown filter", func(t *testing.T) {
		c, _, _ := newController(t)
		c.SetQuery("previous")

		err := c.SetFilter(context.Background(), "teens")
		require.ErrorIs(t, err, searchui.ErrUnknownFilter)

		s := c.State()
		require.Empty(t, s.Query)
		require.False(t, s.Loading)
		require.Equal(t, searchui.PanelError{Message: searchui.MessageEmptyQuery}, s.Panel)
	})
}

func TestDisplay(t *testing.T) {
	c, _, rec := newController(t)

	c.DisplayResults(domain.Success(apollo))
	require.Equal(t, searchui.PanelResults{Packages: []domain.Package{apollo}}, c.State().Panel)

	c.DisplayResults(domain.Success())
	require.Equal(t, searchui.PanelEmpty{}, c.State().Panel)

	c.DisplayResults(domain.Failure("boom"))
	require.Equal(t, searchui.PanelError{Message: "boom"}, c.State().Panel)

	c.DisplayError("other")
	require.Equal(t, searchui.PanelError{Message: "other"}, c.State().Panel)

	require.Len(t, rec.all(), 4)
}
