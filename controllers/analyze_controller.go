package controllers

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"saleslens/backend/analytics"
	"saleslens/backend/config"
	"saleslens/backend/loader"
	"saleslens/backend/models"
)

// UploadAnalyze handles one or more CSV/XLSX uploads, runs each file
// through the normalization pipeline independently, merges the results and
// returns the dashboard metrics for the combined table.
func UploadAnalyze(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		files, ok := formFiles(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing file (field 'file' or 'files')"})
			return
		}

		keywords := analytics.DefaultKeywords()
		normalizer := analytics.NewNormalizer(cfg.CurrencyGlyph)

		normalized := make([]analytics.NormalizedTable, 0, len(files))
		metas := make([]models.FileMeta, 0, len(files))
		for _, fh := range files {
			nt, meta, err := normalizeUpload(fh, keywords, normalizer)
			if err != nil {
				logrus.WithError(err).WithField("file", fh.Filename).Warn("upload decode failed")
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			normalized = append(normalized, nt)
			metas = append(metas, meta)
		}

		merged := analytics.Merge(normalized...)
		c.JSON(http.StatusOK, models.AnalyzeResponse{
			Metrics: analytics.Compute(merged),
			Files:   metas,
		})
	}
}

// NormalizeTable exposes the normalization step on its own: the detected
// role map and the canonical records, no metrics. Callers that persist raw
// bytes use it to re-derive analytics later.
func NormalizeTable(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		files, ok := formFiles(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing file (field 'file' or 'files')"})
			return
		}

		nt, meta, err := normalizeUpload(files[0], analytics.DefaultKeywords(), analytics.NewNormalizer(cfg.CurrencyGlyph))
		if err != nil {
			logrus.WithError(err).WithField("file", files[0].Filename).Warn("upload decode failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		columns, records := canonicalRecords(nt)
		c.JSON(http.StatusOK, models.NormalizeResponse{
			Meta:    meta,
			Columns: columns,
			Records: records,
		})
	}
}

// formFiles accepts either a repeated "files" part or the single "file"
// part older clients send.
func formFiles(c *gin.Context) ([]*multipart.FileHeader, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, false
	}
	files := form.File["files"]
	if len(files) == 0 {
		files = form.File["file"]
	}
	return files, len(files) > 0
}

func normalizeUpload(fh *multipart.FileHeader, kw analytics.Keywords, n analytics.Normalizer) (analytics.NormalizedTable, models.FileMeta, error) {
	f, err := fh.Open()
	if err != nil {
		return analytics.NormalizedTable{}, models.FileMeta{}, err
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return analytics.NormalizedTable{}, models.FileMeta{}, err
	}

	table, err := loader.Decode(content, fh.Filename)
	if err != nil {
		return analytics.NormalizedTable{}, models.FileMeta{}, err
	}

	roles := analytics.ClassifyColumns(table.Columns, kw)
	nt := analytics.Resolve(n.Clean(table), roles)

	meta := models.FileMeta{
		FileName:      fh.Filename,
		Rows:          nt.NumRows(),
		DetectedRoles: rolesToMap(roles),
		AmountSource:  string(nt.Source),
		LowConfidence: nt.LowConfidence(),
	}
	return nt, meta, nil
}

func rolesToMap(roles analytics.RoleMap) map[string]string {
	out := make(map[string]string, len(roles))
	for role, col := range roles {
		out[string(role)] = col
	}
	return out
}

func canonicalRecords(nt analytics.NormalizedTable) ([]string, []map[string]string) {
	columns := []string{string(analytics.RoleProduct), string(analytics.RoleAmount)}
	if nt.Quantity != nil {
		columns = append(columns, string(analytics.RoleQuantity))
	}
	if nt.Dates != nil {
		columns = append(columns, string(analytics.RoleDate))
	}

	records := make([]map[string]string, nt.NumRows())
	for i := range records {
		r := map[string]string{
			string(analytics.RoleProduct): nt.Product[i],
			string(analytics.RoleAmount):  strconv.FormatFloat(nt.Amount[i], 'f', -1, 64),
		}
		if nt.Quantity != nil {
			r[string(analytics.RoleQuantity)] = strconv.FormatFloat(nt.Quantity[i], 'f', -1, 64)
		}
		if nt.Dates != nil {
			r[string(analytics.RoleDate)] = nt.Dates[i]
		}
		records[i] = r
	}
	return columns, records
}
