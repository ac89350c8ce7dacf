package repository

import "fmt"

const keyPrefix = "barberqueue"

func entryKey(id string) string {
	return fmt.Sprintf("%s:entry:%s", keyPrefix, id)
}

func activeKey(shopID string) string {
	return fmt.Sprintf("%s:shop:%s:active", keyPrefix, shopID)
}

func historyKey(shopID string) string {
	return fmt.Sprintf("%s:shop:%s:history", keyPrefix, shopID)
}

func seqKey(shopID string) string {
	return fmt.Sprintf("%s:shop:%s:seq", keyPrefix, shopID)
}

func shopBarbersKey(shopID string) string {
	return fmt.Sprintf("%s:shop:%s:barbers", keyPrefix, shopID)
}

func shopConfigKey(shopID string) string {
	return fmt.Sprintf("%s:shop:%s:config", keyPrefix, shopID)
}

func shopsKey() string {
	return fmt.Sprintf("%s:shops", keyPrefix)
}

func barberKey(barberID string) string {
	return fmt.Sprintf("%s:barber:%s", keyPrefix, barberID)
}

func tokenKey(tokenHash string) string {
	return fmt.Sprintf("%s:token:%s", keyPrefix, tokenHash)
}
