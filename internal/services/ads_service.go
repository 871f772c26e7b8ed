package services

import (
	"os"
	"path"
	"sort"
	"strings"
)

var adExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true, ".svg": true,
}

// AdsService lists the promotional images served under /ads. A missing or
// empty directory yields an empty list, never an error.
type AdsService struct {
	Dir string
}

func NewAdsService(dir string) *AdsService { return &AdsService{Dir: dir} }

func (s *AdsService) List() []string {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return []string{}
	}
	images := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if adExtensions[strings.ToLower(path.Ext(e.Name()))] {
			images = append(images, "/ads/"+e.Name())
		}
	}
	sort.Strings(images)
	return images
}
