/*
 * @Description: 业务哨兵错误，由 Handler 映射为 HTTP 状态码
 * @Author: 安知鱼
 * @Date: 2026-03-02 10:30:15
 * @LastEditTime: 2026-06-15 21:18:47
 * @LastEditors: 安知鱼
 */
package constant

import "errors"

// 定义业务逻辑相关的标准错误
var (
	// ErrNotFound 表示资源未找到，可以由 Handler 转换为 404
	ErrNotFound = errors.New("资源未找到")

	// ErrConflict 表示内容指纹已存在，可以由 Handler 转换为 409
	ErrConflict = errors.New("相同内容的记录已存在")

	// ErrFileTooLarge 表示上传文件超过了大小上限，可以由 Handler 转换为 413
	ErrFileTooLarge = errors.New("文件超过大小限制")

	// ErrUnsupportedFormat 表示文件类型不在允许列表中，可以由 Handler 转换为 400
	ErrUnsupportedFormat = errors.New("不支持的文件类型")
)
