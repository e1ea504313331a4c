package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// GzipReader descomprime los cuerpos de peticiones entrantes que
// lleguen con Content-Encoding: gzip.
func GzipReader() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.Contains(c.GetHeader("Content-Encoding"), "gzip") {
			reader, err := gzip.NewReader(c.Request.Body)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid gzip body"})
				return
			}
			defer reader.Close()

			c.Request.Body = io.NopCloser(reader)
			c.Request.Header.Del("Content-Encoding")
			c.Request.ContentLength = -1
		}
		c.Next()
	}
}

// GzipOptions configura el middleware de compresión de respuestas.
type GzipOptions struct {
	ExcludedPaths []string
}

// GzipMiddleware comprime las respuestas cuando el cliente lo soporta,
// salvo en las rutas excluidas.
func GzipMiddleware(opts GzipOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !clientAcceptsGzip(c) || isExcluded(c.Request.URL.Path, opts.ExcludedPaths) {
			c.Next()
			return
		}
		compressResponse(c)
	}
}

// ForceGzipOptions configura la compresión forzada por ruta.
type ForceGzipOptions struct {
	CheckClientSupport bool
}

// ForceGzipMiddleware comprime siempre la respuesta; si
// CheckClientSupport está activo, sólo cuando el cliente acepta gzip.
func ForceGzipMiddleware(opts ForceGzipOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if opts.CheckClientSupport && !clientAcceptsGzip(c) {
			c.Next()
			return
		}
		compressResponse(c)
	}
}

type gzipWriter struct {
	gin.ResponseWriter
	writer *gzip.Writer
}

func (g *gzipWriter) Write(data []byte) (int, error) {
	return g.writer.Write(data)
}

func (g *gzipWriter) WriteString(s string) (int, error) {
	return g.writer.Write([]byte(s))
}

func compressResponse(c *gin.Context) {
	gz := gzip.NewWriter(c.Writer)
	c.Header("Content-Encoding", "gzip")
	c.Header("Vary", "Accept-Encoding")

	c.Writer = &gzipWriter{ResponseWriter: c.Writer, writer: gz}
	defer func() {
		gz.Close()
		c.Header("Content-Length", "")
	}()
	c.Next()
}

func clientAcceptsGzip(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept-Encoding"), "gzip")
}

func isExcluded(path string, excluded []string) bool {
	for _, p := range excluded {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
