package purge_test

import (
	"context"
	"errors"
	"purger/internal/purge"
	"testing"
	"time"

	mockstorage "purger/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNormalizeHosts(t *testing.T) {
	got := purge.NormalizeHosts([]string{"Example.com", "www.example.com", "", "  ", "shop.example.org", "EXAMPLE.COM"})
	require.Equal(t, []string{"example.com", "shop.example.org"}, got)
}

func TestHostResolver_NoDomainMapping(t *testing.T) {
	r := purge.NewHostResolver(purge.HostOptions{HomeHost: "www.example.com"}, nil)

	require.Equal(t, []string{"example.com"}, r.Hosts(context.Background()))
}

func TestHostResolver_DomainMapping(t *testing.T) {
	ctrl := gomock.NewController(t)
	site := mockstorage.NewMockSiteStorage(ctrl)

	site.EXPECT().BlogDomains(gomock.Any(), int64(3)).Return([]string{"example.com"}, nil).Times(1)
	site.EXPECT().MappedDomains(gomock.Any(), int64(3)).Return([]string{"www.example.org", "example.net"}, nil).Times(1)

	r := purge.NewHostResolver(purge.HostOptions{
		HomeHost:      "example.com",
		DomainMapping: true,
		BlogID:        3,
		TTL:           time.Hour,
	}, site)

	want := []string{"example.com", "example.org", "example.net"}
	require.Equal(t, want, r.Hosts(context.Background()))
	// second call is served from cache
	require.Equal(t, want, r.Hosts(context.Background()))
}

func TestHostResolver_ReturnsCopy(t *testing.T) {
	r := purge.NewHostResolver(purge.HostOptions{HomeHost: "example.com"}, nil)

	hosts := r.Hosts(context.Background())
	hosts[0] = "mutated.example"

	require.Equal(t, []string{"example.com"}, r.Hosts(context.Background()))
}

func TestHostResolver_StorageErrorNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	site := mockstorage.NewMockSiteStorage(ctrl)

	gomock.InOrder(
		site.EXPECT().BlogDomains(gomock.Any(), int64(1)).Return(nil, errors.New("db down")),
		site.EXPECT().BlogDomains(gomock.Any(), int64(1)).Return([]string{"example.com"}, nil),
	)
	site.EXPECT().MappedDomains(gomock.Any(), int64(1)).Return([]string{"example.org"}, nil).Times(2)

	r := purge.NewHostResolver(purge.HostOptions{HomeHost: "example.com", DomainMapping: true, BlogID: 1}, site)

	require.Equal(t, []string{"example.com", "example.org"}, r.Hosts(context.Background()))
	require.Equal(t, []string{"example.com", "example.org"}, r.Hosts(context.Background()))
	// now complete and cached; no more storage calls are expected
	require.Equal(t, []string{"example.com", "example.org"}, r.Hosts(context.Background()))
}

func TestHostResolver_Expiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	site := mockstorage.NewMockSiteStorage(ctrl)

	site.EXPECT().BlogDomains(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	site.EXPECT().MappedDomains(gomock.Any(), gomock.Any()).Return([]string{"example.org"}, nil).Times(2)

	r := purge.NewHostResolver(purge.HostOptions{
		HomeHost:      "example.com",
		DomainMapping: true,
		TTL:           20 * time.Millisecond,
	}, site)

	r.Hosts(context.Background())
	time.Sleep(50 * time.Millisecond)
	r.Hosts(context.Background())
}
