// Package api 處理 HTTP 請求路由和處理。
//
// 這個包包含了所有的 HTTP 處理器（handlers）。
// 它負責將查詢參數轉換為適當的服務調用，並將查詢結果轉換回 HTTP 響應。
// 所有端點都是唯讀的，資料的寫入由外部資料管線負責。
package api
