package objects

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-inventory-sync/internal/config"
	"github.com/MKhiriev/go-inventory-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listResultXML = `<?xml version="1.0" encoding="UTF-8"?>
<ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
  <Name>inventory</Name>
  <Prefix>d/vehicles/V/</Prefix>
  <KeyCount>2</KeyCount>
  <MaxKeys>1000</MaxKeys>
  <IsTruncated>false</IsTruncated>
  <Contents><Key>d/vehicles/V/0.jpg</Key><Size>3</Size></Contents>
  <Contents><Key>d/vehicles/V/1.webp</Key><Size>4</Size></Contents>
</ListBucketResult>`

const accessDeniedXML = `<?xml version="1.0" encoding="UTF-8"?>
<Error><Code>AccessDenied</Code><Message>Access Denied</Message><BucketName>inventory</BucketName><RequestId>1</RequestId></Error>`

func newTestMinIOStorage(t *testing.T, handler http.HandlerFunc) Storage {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	s, err := NewMinIOStorage(config.Objects{
		Endpoint:        u.Host,
		Bucket:          "inventory",
		Region:          "us-east-1",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
	}, logger.Nop())
	require.NoError(t, err)
	return s
}

func TestMinIOStorage_List(t *testing.T) {
	s := newTestMinIOStorage(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "d/vehicles/V/", r.URL.Query().Get("prefix"))
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(listResultXML))
	})

	names, err := s.List(context.Background(), "d/vehicles/V/")

	require.NoError(t, err)
	assert.Equal(t, []string{"d/vehicles/V/0.jpg", "d/vehicles/V/1.webp"}, names)
}

func TestMinIOStorage_ListError(t *testing.T) {
	s := newTestMinIOStorage(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(accessDeniedXML))
	})

	names, err := s.List(context.Background(), "d/vehicles/V/")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "d/vehicles/V/")
	assert.Nil(t, names)
}
