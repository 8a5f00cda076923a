package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"lms/config"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrMediaNotConfigured is returned when the media storage credentials
// are absent from the environment.
var ErrMediaNotConfigured = fmt.Errorf("media storage is not configured")

// MediaStorage is the upload/delete surface of the media CDN. Swapped for
// a stub in tests.
type MediaStorage interface {
	Upload(filePath string) (*UploadResult, error)
	Destroy(publicID string) error
}

// MediaClient is the storage client used by the media controller.
// Initialized by InitCloudinary at startup.
var MediaClient MediaStorage

// UploadResult is the subset of the upload response the API returns to
// the client.
type UploadResult struct {
	URL          string `json:"secure_url"`
	PublicID     string `json:"public_id"`
	ResourceType string `json:"resource_type"`
	Format       string `json:"format"`
	Bytes        int64  `json:"bytes"`
}

// CloudinaryService uploads media through the Cloudinary HTTP API
type CloudinaryService struct {
	client    *resty.Client
	cloudName string
	apiKey    string
	apiSecret string
}

// InitCloudinary wires the live storage client from configuration
func InitCloudinary() {
	MediaClient = NewCloudinaryService(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) *CloudinaryService {
	return &CloudinaryService{
		client:    resty.New().SetBaseURL("https://api.cloudinary.com/v1_1").SetTimeout(60 * time.Second),
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
	}
}

func (s *CloudinaryService) configured() bool {
	return s.cloudName != "" && s.apiKey != "" && s.apiSecret != ""
}

// sign builds the request signature: sha1 of the sorted params plus secret
func (s *CloudinaryService) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + s.apiSecret))
	return hex.EncodeToString(sum[:])
}

type cloudinaryErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload forwards a local file to Cloudinary and returns its CDN result
func (s *CloudinaryService) Upload(filePath string) (*UploadResult, error) {
	if !s.configured() {
		return nil, ErrMediaNotConfigured
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	signature := s.sign(map[string]string{"timestamp": timestamp})

	var result UploadResult
	var errResp cloudinaryErrorResponse
	resp, err := s.client.R().
		SetFile("file", filePath).
		SetFormData(map[string]string{
			"api_key":   s.apiKey,
			"timestamp": timestamp,
			"signature": signature,
		}).
		SetResult(&result).
		SetError(&errResp).
		Post("/" + s.cloudName + "/auto/upload")
	if err != nil {
		return nil, fmt.Errorf("failed to reach media storage: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("media storage upload failed: %s", errResp.Error.Message)
	}

	return &result, nil
}

// Destroy removes a previously uploaded asset
func (s *CloudinaryService) Destroy(publicID string) error {
	if !s.configured() {
		return ErrMediaNotConfigured
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	signature := s.sign(map[string]string{
		"public_id": publicID,
		"timestamp": timestamp,
	})

	var errResp cloudinaryErrorResponse
	resp, err := s.client.R().
		SetFormData(map[string]string{
			"public_id": publicID,
			"api_key":   s.apiKey,
			"timestamp": timestamp,
			"signature": signature,
		}).
		SetError(&errResp).
		Post("/" + s.cloudName + "/image/destroy")
	if err != nil {
		return fmt.Errorf("failed to reach media storage: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("media storage delete failed: %s", errResp.Error.Message)
	}

	return nil
}
