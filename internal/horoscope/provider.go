package horoscope

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"net/http"
	"net/url"
	"time"
)

// templates 是本地运势文本池。
// 作为不可变的静态配置在启动时加载一次，绝不在运行期修改。
var templates = []string{
	"Звезды советуют вам проявить инициативу! Сегодня удачный день для новых начинаний.",
	"Прислушайтесь к своей интуиции - она не подведет в важных решениях.",
	"День благоприятен для общения и установления новых контактов.",
	"Сосредоточьтесь на семейных делах, близкие нуждаются в вашей поддержке.",
	"Время проявить творческие способности! Не бойтесь экспериментировать.",
	"Практичный подход к делам принесет отличные результаты.",
	"Ищите баланс во всем - работе, отдыхе и отношениях.",
	"Глубокий анализ ситуации поможет найти неожиданное решение.",
	"Расширьте горизонты! Новые знания откроют перспективы.",
	"Терпение и настойчивость - ключ к достижению цели.",
	"Время для смелых идей и нестандартных решений!",
	"Доверьтесь течению жизни, интуиция подскажет верный путь.",
}

const (
	// SourceTemplate 表示文本来自本地模板池
	SourceTemplate = "template"
	// SourceRealAPI 表示文本来自外部数据源
	SourceRealAPI = "real_api"
	// SourceCache 表示文本来自每日缓存
	SourceCache = "cache"
)

const externalRequestTimeout = 5 * time.Second

// Provider 负责为 (星座, 日期) 生成运势文本。
// 未配置外部数据源时从本地模板池确定性选取；
// 配置了外部数据源时优先请求外部API，任何失败都静默回退到本地池。
type Provider struct {
	apiKey string
	client *http.Client
	// baseURL 可在测试中覆盖，默认指向外部运势API
	baseURL string
}

// NewProvider 创建一个运势文本提供者。apiKey为空时只使用本地模板池。
func NewProvider(apiKey string) *Provider {
	return &Provider{
		apiKey:  apiKey,
		client:  &http.Client{Timeout: externalRequestTimeout},
		baseURL: "https://aztro.sameerkumar.website/",
	}
}

// templateFor 从本地池中确定性选取模板。
// 使用FNV-1a对sign+date的UTF-8字节做哈希：算法固定，
// 跨进程重启和跨平台的选取结果保持稳定。
func templateFor(sign string, date string) string {
	h := fnv.New32a()
	h.Write([]byte(sign + date))
	return templates[h.Sum32()%uint32(len(templates))]
}

// aztroResponse 是外部API响应中我们关心的字段
type aztroResponse struct {
	Description string `json:"description"`
}

// fetchExternal 请求外部数据源，成功时返回包装后的本地化文本。
func (p *Provider) fetchExternal(sign string) (string, error) {
	requestURL := fmt.Sprintf("%s?%s", p.baseURL, url.Values{
		"sign": {EnglishSign(sign)},
		"day":  {"today"},
	}.Encode())

	resp, err := p.client.Post(requestURL, "application/json", nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("外部运势API返回状态码 %d", resp.StatusCode)
	}

	var data aztroResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", err
	}
	if data.Description == "" {
		return "", fmt.Errorf("外部运势API响应缺少description字段")
	}

	return "Гномы читают звезды: " + data.Description, nil
}

// TextFor 返回 (星座, 日期) 对应的运势文本及其来源。
// 永远返回可用的文本，外部数据源的失败绝不暴露给调用方。
func (p *Provider) TextFor(sign string, date string) (string, string) {
	if p.apiKey == "" {
		return templateFor(sign, date), SourceTemplate
	}

	text, err := p.fetchExternal(sign)
	if err != nil {
		fmt.Printf("获取外部运势数据失败，回退到本地模板: %v\n", err)
		return templateFor(sign, date), SourceTemplate
	}
	return text, SourceRealAPI
}
