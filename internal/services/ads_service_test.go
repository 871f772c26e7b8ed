package services_test

import (
	"os"
	"path/filepath"
	"testing"

	"shopmate/internal/services"
)

func TestAdsListFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"7.png", "6.png", "readme.txt", "clip.mp4", "8.webp"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	got := services.NewAdsService(dir).List()
	want := []string{"/ads/6.png", "/ads/7.png", "/ads/8.webp"}
	if len(got) != len(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want %v, got %v", want, got)
		}
	}
}

func TestAdsListMissingDirIsEmpty(t *testing.T) {
	got := services.NewAdsService("/nonexistent/ads").List()
	if len(got) != 0 {
		t.Fatalf("missing dir must yield empty list, got %v", got)
	}
}
