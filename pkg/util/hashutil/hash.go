/*
 * @Description: 内容指纹计算
 * @Author: 安知鱼
 * @Date: 2026-03-05 10:55:40
 * @LastEditTime: 2026-04-11 09:12:33
 * @LastEditors: 安知鱼
 */
package hashutil

import (
	"crypto/md5"
	"encoding/hex"
)

// MD5Hex 计算字节缓冲的内容指纹，返回32位小写十六进制串。
// 仅用作去重指纹，不是安全边界。
func MD5Hex(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}
