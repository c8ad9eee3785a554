package service

import "errors"

// ErrNotFound 表示查詢的資料不存在
// 查無資料是正常情況而不是系統故障，呼叫端應將其對應為 404 回應
var ErrNotFound = errors.New("record not found")
