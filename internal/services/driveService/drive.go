package driveService

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

var (
	driveFileRe   = regexp.MustCompile(`drive\.google\.com/file/d/([^/]+)`)
	spreadsheetRe = regexp.MustCompile(`docs\.google\.com/spreadsheets/d/([^/]+)`)
	gidRe         = regexp.MustCompile(`[?&]gid=([^&]+)`)
)

// ExtractFileID pulls the file id out of a Google Drive or Google Sheets
// share URL. It returns "" when the URL matches neither format.
func ExtractFileID(url string) string {
	if m := driveFileRe.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	if m := spreadsheetRe.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return ""
}

// ToCsvURL converts a Drive or Sheets share URL into a direct CSV download
// URL. Unrecognized URLs are returned unchanged.
func ToCsvURL(url string) string {
	if m := driveFileRe.FindStringSubmatch(url); m != nil {
		return fmt.Sprintf("https://drive.google.com/uc?export=download&id=%s", m[1])
	}
	if m := spreadsheetRe.FindStringSubmatch(url); m != nil {
		gidParam := ""
		if g := gidRe.FindStringSubmatch(url); g != nil {
			gidParam = "&gid=" + g[1]
		}
		return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv%s", m[1], gidParam)
	}
	return url
}

// DownloadToFile fetches the CSV export of a shared Drive/Sheets URL into
// destPath. Large files answer with a confirm cookie instead of content;
// the download is retried with the confirm token in that case.
func DownloadToFile(shareURL, destPath string) error {
	url := ToCsvURL(shareURL)

	client := &http.Client{Timeout: 60 * time.Second}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("unable to download file: %w", err)
	}
	defer resp.Body.Close()

	for _, cookie := range resp.Cookies() {
		if len(cookie.Name) >= 16 && cookie.Name[:16] == "download_warning" {
			resp.Body.Close()

			confirmURL := fmt.Sprintf("%s&confirm=%s", url, cookie.Value)
			resp, err = client.Get(confirmURL)
			if err != nil {
				return fmt.Errorf("unable to download file: %w", err)
			}
			defer resp.Body.Close()
			break
		}
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed with status %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("unable to create download directory: %w", err)
	}

	dst, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("unable to create local file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, resp.Body); err != nil {
		return fmt.Errorf("unable to write downloaded file: %w", err)
	}

	return nil
}
