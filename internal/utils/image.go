package utils

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrNotAnImage 上传内容不是可解码的图片
var ErrNotAnImage = errors.New("文件不是有效的图片")

// ValidateImage 校验内容是否为可解码图片，返回图片格式
func ValidateImage(content []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(content))
	if err != nil {
		return "", ErrNotAnImage
	}
	return format, nil
}

// RecipeImagePath 生成菜谱图片的存储相对路径
// 每次调用生成全新的随机文件名，保留原始扩展名；
// 原文件名没有扩展名时回退为解码出的图片格式
func RecipeImagePath(originalName string, format string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = "." + format
	}
	return filepath.Join("recipe", uuid.New().String()+ext)
}
