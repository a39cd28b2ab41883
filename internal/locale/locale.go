// Package locale renders user-facing messages in Arabic or English.
package locale

import (
	"github.com/ariefcatur/go-storefront/internal/shop"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// MsgSeeded and MsgAlreadySeeded are only used by the seed endpoint.
const (
	MsgSeeded        = "seeded"
	MsgAlreadySeeded = "already_seeded"
)

var arabic = []*i18n.Message{
	{ID: shop.MsgFieldsRequired, Other: "جميع الحقول مطلوبة"},
	{ID: shop.MsgProductIDRequired, Other: "productId مطلوب"},
	{ID: shop.MsgInvalidQuantity, Other: "الكمية غير صحيحة"},
	{ID: shop.MsgCartEmpty, Other: "السلة فارغة"},
	{ID: shop.MsgProductNotFound, Other: "المنتج غير موجود"},
	{ID: shop.MsgCartItemNotFound, Other: "العنصر غير موجود"},
	{ID: shop.MsgOrderNotFound, Other: "الطلب غير موجود"},
	{ID: shop.MsgInternal, Other: "حدث خطأ"},
	{ID: MsgSeeded, Other: "تم إضافة البيانات بنجاح"},
	{ID: MsgAlreadySeeded, Other: "البيانات موجودة بالفعل"},
}

var english = []*i18n.Message{
	{ID: shop.MsgFieldsRequired, Other: "All fields are required"},
	{ID: shop.MsgProductIDRequired, Other: "productId is required"},
	{ID: shop.MsgInvalidQuantity, Other: "Invalid quantity"},
	{ID: shop.MsgCartEmpty, Other: "Your cart is empty"},
	{ID: shop.MsgProductNotFound, Other: "Product not found"},
	{ID: shop.MsgCartItemNotFound, Other: "Cart item not found"},
	{ID: shop.MsgOrderNotFound, Other: "Order not found"},
	{ID: shop.MsgInternal, Other: "Something went wrong"},
	{ID: MsgSeeded, Other: "Catalog data added"},
	{ID: MsgAlreadySeeded, Other: "Catalog data already exists"},
}

type Translator struct {
	bundle   *i18n.Bundle
	fallback string
}

// New builds the message bundle. defaultLang ("ar" or "en") is used when the
// request names no supported language.
func New(defaultLang string) (*Translator, error) {
	tag, err := language.Parse(defaultLang)
	if err != nil {
		tag = language.Arabic
	}
	b := i18n.NewBundle(tag)
	if err := b.AddMessages(language.Arabic, arabic...); err != nil {
		return nil, err
	}
	if err := b.AddMessages(language.English, english...); err != nil {
		return nil, err
	}
	return &Translator{bundle: b, fallback: tag.String()}, nil
}

// Message localizes id for an Accept-Language header value. Unknown ids are
// returned verbatim.
func (t *Translator) Message(acceptLanguage, id string) string {
	loc := i18n.NewLocalizer(t.bundle, acceptLanguage, t.fallback)
	s, err := loc.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil || s == "" {
		return id
	}
	return s
}
