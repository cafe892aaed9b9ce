package extract

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/IMSLEPT/quizlo/internal/constants"
)

// Extracting text from a large scanned bank is the slow step of the
// pipeline, so page texts are cached per document between runs. An entry is
// only reused while the source file is unchanged and the TTL has not passed.

type pageCacheEntry struct {
	Pages     []string `json:"pages"`
	ModTime   int64    `json:"mod_time_unix"`
	UpdatedAt int64    `json:"updated_at_unix"`
}

type pageCacheFile struct {
	Documents map[string]pageCacheEntry `json:"documents"`
}

var (
	pageCacheMu     sync.Mutex
	pageCacheLoaded bool
	pageCache       = pageCacheFile{Documents: map[string]pageCacheEntry{}}
)

func cachedPages(path string) ([]string, bool) {
	key, modTime, ok := pageCacheKey(path)
	if !ok {
		return nil, false
	}

	pageCacheMu.Lock()
	defer pageCacheMu.Unlock()

	ensurePageCacheLoadedLocked()
	entry, exists := pageCache.Documents[key]
	if !exists {
		return nil, false
	}

	stale := entry.UpdatedAt <= 0 ||
		time.Since(time.Unix(entry.UpdatedAt, 0)) > constants.PageCacheTTL ||
		entry.ModTime != modTime
	if stale {
		delete(pageCache.Documents, key)
		savePageCacheLocked()
		return nil, false
	}

	copied := append([]string(nil), entry.Pages...)
	return copied, len(copied) > 0
}

func setCachedPages(path string, pages []string) {
	key, modTime, ok := pageCacheKey(path)
	if !ok || len(pages) == 0 {
		return
	}

	pageCacheMu.Lock()
	defer pageCacheMu.Unlock()

	ensurePageCacheLoadedLocked()
	pageCache.Documents[key] = pageCacheEntry{
		Pages:     append([]string(nil), pages...),
		ModTime:   modTime,
		UpdatedAt: time.Now().Unix(),
	}
	savePageCacheLocked()
}

func pageCacheKey(path string) (string, int64, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", 0, false
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", 0, false
	}
	return abs, info.ModTime().Unix(), true
}

func ensurePageCacheLoadedLocked() {
	if pageCacheLoaded {
		return
	}
	pageCacheLoaded = true

	cachePath := pageCachePath()
	payload, err := os.ReadFile(cachePath)
	if err != nil {
		return
	}

	var loaded pageCacheFile
	if err := json.Unmarshal(payload, &loaded); err != nil {
		debugf("failed to parse page cache file %q: %v", cachePath, err)
		return
	}
	if loaded.Documents == nil {
		loaded.Documents = map[string]pageCacheEntry{}
	}
	pageCache = loaded
}

func savePageCacheLocked() {
	cachePath := pageCachePath()
	if cachePath == "" {
		return
	}

	dir := filepath.Dir(cachePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		debugf("failed to create cache dir %q: %v", dir, err)
		return
	}

	payload, err := json.MarshalIndent(pageCache, "", "  ")
	if err != nil {
		debugf("failed to marshal page cache: %v", err)
		return
	}
	if err := os.WriteFile(cachePath, payload, 0o644); err != nil {
		debugf("failed to write page cache file %q: %v", cachePath, err)
	}
}

func pageCachePath() string {
	baseDir, err := os.UserCacheDir()
	if err == nil && strings.TrimSpace(baseDir) != "" {
		return filepath.Join(baseDir, "quizlo", "page_texts.json")
	}
	return filepath.Join(".", ".quizlo_page_cache.json")
}
