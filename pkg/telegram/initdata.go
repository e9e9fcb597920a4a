package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/url"
	"sort"
	"strings"
)

// User 定义了initData中嵌入的Telegram用户信息。
// 字段与Telegram WebApp下发的user JSON一一对应。
type User struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Username     string `json:"username"`
	LanguageCode string `json:"language_code"`
	IsPremium    bool   `json:"is_premium"`
}

// VerifyInitData 校验Telegram WebApp启动参数的真实性，并提取其中的用户信息。
// 校验失败（签名不符、参数格式错误、user字段缺失等）一律返回 (nil, false)，
// 绝不向调用方抛出错误，也绝不记录botToken。
func VerifyInitData(initData string, botToken string) (*User, bool) {
	// 1. 解析URL编码的键值对，每个键只取第一个值
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, false
	}

	receivedHash := values.Get("hash")
	if receivedHash == "" {
		return nil, false
	}

	// 2. 构造校验字符串：移除hash后，按key=value格式拼装并按字典序排序，
	// 以换行符连接
	pairs := make([]string, 0, len(values))
	for key := range values {
		if key == "hash" {
			continue
		}
		pairs = append(pairs, key+"="+values.Get(key))
	}
	sort.Strings(pairs)
	checkString := strings.Join(pairs, "\n")

	// 3. 派生密钥：以字面量"WebAppData"为密钥，对botToken做HMAC-SHA256
	secretMac := hmac.New(sha256.New, []byte("WebAppData"))
	secretMac.Write([]byte(botToken))
	secretKey := secretMac.Sum(nil)

	// 4. 用派生密钥对校验字符串计算HMAC-SHA256，渲染为小写十六进制
	mac := hmac.New(sha256.New, secretKey)
	mac.Write([]byte(checkString))
	calculatedHash := hex.EncodeToString(mac.Sum(nil))

	// 5. 恒定时间比较，防止时序攻击
	if !hmac.Equal([]byte(calculatedHash), []byte(receivedHash)) {
		return nil, false
	}

	// 6. 签名通过后，URL解码并解析user字段
	rawUser := values.Get("user")
	if rawUser == "" {
		return nil, false
	}
	if decoded, err := url.QueryUnescape(rawUser); err == nil {
		rawUser = decoded
	}

	var user User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return nil, false
	}

	return &user, true
}
