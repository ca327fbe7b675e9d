package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"foodmarket/marketplace-svc/internal/domain"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.messages = append(w.messages, msgs...)
	return w.err
}

func TestKafkaNotifier_Notify(t *testing.T) {
	writer := &recordingWriter{}
	notifier := NewKafkaNotifier(writer)

	require.NoError(t, notifier.Notify(context.Background(), "0821234567", "Order #42 accepted"))

	require.Len(t, writer.messages, 1)
	assert.Equal(t, "0821234567", string(writer.messages[0].Key))

	var published domain.Notification
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &published))
	assert.Equal(t, domain.NotificationSMS, published.Type)
	assert.Equal(t, "Order #42 accepted", published.Message)
	assert.False(t, published.Timestamp.IsZero())
}

func TestKafkaNotifier_PropagatesWriteError(t *testing.T) {
	notifier := NewKafkaNotifier(&recordingWriter{err: errors.New("broker down")})

	assert.EqualError(t, notifier.Notify(context.Background(), "0821234567", "hi"), "broker down")
}

type fakePutObject struct {
	input   *s3.PutObjectInput
	deleted *s3.DeleteObjectInput
	body    string
	err     error
}

func (f *fakePutObject) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	if params.Body != nil {
		raw, _ := io.ReadAll(params.Body)
		f.body = string(raw)
	}
	return &s3.PutObjectOutput{}, f.err
}

func (f *fakePutObject) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = params
	return &s3.DeleteObjectOutput{}, f.err
}

func TestS3Store_Upload(t *testing.T) {
	client := &fakePutObject{}
	store := &S3Store{Client: client, Bucket: "banners-bucket", PublicBaseURL: "https://cdn.example.com"}

	url, err := store.Upload(context.Background(), "banners/abc.jpg", strings.NewReader("jpeg-bytes"), "image/jpeg")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/banners/abc.jpg", url)
	assert.Equal(t, "banners-bucket", *client.input.Bucket)
	assert.Equal(t, "image/jpeg", *client.input.ContentType)
	assert.Equal(t, "jpeg-bytes", client.body)
}

func TestS3Store_UploadFailure(t *testing.T) {
	store := &S3Store{Client: &fakePutObject{err: errors.New("access denied")}, Bucket: "b"}

	_, err := store.Upload(context.Background(), "banners/abc.jpg", strings.NewReader("x"), "")

	assert.ErrorContains(t, err, "access denied")
}

func TestS3Store_Delete(t *testing.T) {
	client := &fakePutObject{}
	store := &S3Store{Client: client, Bucket: "banners-bucket"}

	require.NoError(t, store.Delete(context.Background(), "banners/abc.jpg"))
	assert.Equal(t, "banners-bucket", *client.deleted.Bucket)
	assert.Equal(t, "banners/abc.jpg", *client.deleted.Key)

	client.err = errors.New("access denied")
	assert.ErrorContains(t, store.Delete(context.Background(), "banners/abc.jpg"), "access denied")
}

func TestBannerKey(t *testing.T) {
	key := BannerKey("Front.JPG")

	assert.True(t, strings.HasPrefix(key, "banners/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.NotEqual(t, key, BannerKey("Front.JPG"))
}

type fakeGeocoding struct {
	results []maps.GeocodingResult
	err     error
	request *maps.GeocodingRequest
}

func (f *fakeGeocoding) Geocode(_ context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error) {
	f.request = r
	return f.results, f.err
}

func TestGoogleGeocoder_Geocode(t *testing.T) {
	result := maps.GeocodingResult{}
	result.Geometry.Location = maps.LatLng{Lat: -29.8587, Lng: 31.0218}
	client := &fakeGeocoding{results: []maps.GeocodingResult{result}}
	geocoder := &GoogleGeocoder{Client: client, Region: "za"}

	coords, err := geocoder.Geocode(context.Background(), "1 Main Rd, Berea, Durban")

	require.NoError(t, err)
	assert.Equal(t, "1 Main Rd, Berea, Durban", client.request.Address)
	assert.Equal(t, "za", client.request.Region)
	assert.Equal(t, "-29.8587", coords.Latitude.String())
	assert.Equal(t, "31.0218", coords.Longitude.String())
}

func TestGoogleGeocoder_NoResult(t *testing.T) {
	geocoder := &GoogleGeocoder{Client: &fakeGeocoding{}}

	_, err := geocoder.Geocode(context.Background(), "nowhere")

	assert.ErrorIs(t, err, ErrAddressNotFound)
}
