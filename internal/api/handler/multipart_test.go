package handler

import (
	"bytes"
	"mime/multipart"
)

// multipartWriter 写入单文件表单（字段名 file），返回 Content-Type
func multipartWriter(buf *bytes.Buffer, filename string, content []byte) string {
	mw := multipart.NewWriter(buf)
	part, _ := mw.CreateFormFile("file", filename)
	part.Write(content)
	mw.Close()
	return mw.FormDataContentType()
}
