package catalog

import "github.com/somi-im/somi/internal/domain"

// SeedRecords is the built-in catalog used when neither the store nor a
// seed file yields any records. It mirrors the original launch listing.
var SeedRecords = []domain.Record{
	{ID: "1", Name: "PUFF.EE", Provider: "Quyu", Price: "¥2000", Status: domain.StatusAvailable},
	{ID: "2", Name: "SAY.MOM", Provider: "Spaceship", Price: "¥169", Status: domain.StatusAvailable},
	{ID: "3", Name: "MIANLING.CN", Provider: "Aliyun", Price: "¥299", Status: domain.StatusAvailable},
	{ID: "4", Name: "QIAO.SI", Provider: "Dynadot", Price: "¥900", Status: domain.StatusAvailable},
	{ID: "5", Name: "NAV.PM", Provider: "Hostinger", Price: "¥699", Status: domain.StatusAvailable},
	{ID: "6", Name: "HRTIP.COM", Provider: "Spaceship", Price: "¥299", Status: domain.StatusAvailable},
	{ID: "7", Name: "VX.BABY", Provider: "Spaceship", Price: "¥299", Status: domain.StatusAvailable},
	{ID: "8", Name: "1985.ME", Provider: "Namecheap", Price: "¥599", Status: domain.StatusAvailable},
	{ID: "9", Name: "HRDARK.COM", Provider: "Spaceship", Price: "¥299", Status: domain.StatusAvailable},
	{ID: "10", Name: "XIBO.CC", Provider: "West", Price: "¥199", Status: domain.StatusAvailable},
	{ID: "11", Name: "OLD.PINK", Provider: "Spaceship", Price: "¥299", Status: domain.StatusAvailable},
	{ID: "12", Name: "YEYU.FUN", Provider: "Spaceship", Price: "¥299", Status: domain.StatusAvailable},
	{ID: "13", Name: "YUE.LV", Provider: "Dynadot", Price: "¥399", Status: domain.StatusAvailable},
	{ID: "14", Name: "LOGO.BIKE", Provider: "Spaceship", Price: "¥199", Status: domain.StatusAvailable},
	{ID: "15", Name: "NAV.BLUE", Provider: "West", Price: "¥599", Status: domain.StatusAvailable},
	{ID: "16", Name: "YIBAN.ORG", Provider: "Spaceship", Price: "¥499", Status: domain.StatusAvailable},
	{ID: "17", Name: "ZOOEC.COM", Provider: "Spaceship", Price: "¥999", Status: domain.StatusAvailable},
	{ID: "18", Name: "LLL.SKIN", Provider: "Spaceship", Price: "¥199", Status: domain.StatusAvailable},
	{ID: "19", Name: "OI.TO", Provider: "NameSilo", Price: "¥888", Status: domain.StatusAvailable},
	{ID: "20", Name: "III.SKIN", Provider: "Spaceship", Price: "¥199", Status: domain.StatusAvailable},
	{ID: "21", Name: "ZUI.RE", Provider: "Hostinger", Price: "¥999", Status: domain.StatusAvailable},
	{ID: "22", Name: "MAC.RE", Provider: "Hostinger", Price: "¥999", Status: domain.StatusAvailable},
	{ID: "23", Name: "XLI.ST", Provider: "Namecheap", Price: "¥299", Status: domain.StatusAvailable},
	{ID: "24", Name: "IIIV.ORG", Provider: "Spaceship", Price: "¥299", Status: domain.StatusAvailable},
	{ID: "25", Name: "85.TO", Provider: "NameSilo", Price: "¥888", Status: domain.StatusAvailable},
	{ID: "26", Name: "LOG.PICS", Provider: "Spaceship", Price: "¥399", Status: domain.StatusAvailable},
	{ID: "27", Name: "MRMI.TOP", Provider: "Spaceship", Price: "¥299", Status: domain.StatusAvailable},
	{ID: "28", Name: "800.CX", Provider: "West", Price: "¥666", Status: domain.StatusAvailable},
	{ID: "29", Name: "SVIP.LI", Provider: "Dynadot", Price: "¥599", Status: domain.StatusAvailable},
	{ID: "30", Name: "YUN.PINK", Provider: "West", Price: "¥299", Status: domain.StatusAvailable},
	{ID: "31", Name: "MIDOG.ORG", Provider: "Spaceship", Price: "¥299", Status: domain.StatusAvailable},
	{ID: "32", Name: "OYESE.COM", Provider: "Spaceship", Price: "¥499", Status: domain.StatusAvailable},
	{ID: "33", Name: "MIWU.ORG", Provider: "Spaceship", Price: "¥500", Status: domain.StatusAvailable},
	{ID: "34", Name: "MOXU.XYZ", Provider: "Spaceship", Price: "¥300", Status: domain.StatusAvailable},
	{ID: "35", Name: "SSS.KIM", Provider: "Spaceship", Price: "¥200", Status: domain.StatusAvailable},
	{ID: "36", Name: "LLL.KIM", Provider: "Spaceship", Price: "¥200", Status: domain.StatusAvailable},
	{ID: "37", Name: "SHAN.IM", Provider: "Dynadot", Price: "¥299", Status: domain.StatusAvailable},
	{ID: "38", Name: "SUYE.CC", Provider: "West", Price: "¥199", Status: domain.StatusAvailable},
	{ID: "39", Name: "GUFF.CC", Provider: "West", Price: "¥199", Status: domain.StatusAvailable},
	{ID: "40", Name: "RAR.CX", Provider: "West", Price: "¥999", Status: domain.StatusAvailable},
	{ID: "41", Name: "VPS.TAXI", Provider: "Quyu", Price: "¥666", Status: domain.StatusAvailable},
	{ID: "42", Name: "MOTS.CC", Provider: "West", Price: "¥199", Status: domain.StatusAvailable},
	{ID: "43", Name: "00.MOM", Provider: "Spaceship", Price: "¥99", Status: domain.StatusAvailable},
	{ID: "44", Name: "TI.MOM", Provider: "Spaceship", Price: "¥99", Status: domain.StatusAvailable},
	{ID: "45", Name: "CSS.DOG", Provider: "Porkbun", Price: "¥299", Status: domain.StatusAvailable},
	{ID: "46", Name: "BBB.LAT", Provider: "Spaceship", Price: "¥199", Status: domain.StatusAvailable},
	{ID: "47", Name: "ZZZ.LAT", Provider: "Spaceship", Price: "¥199", Status: domain.StatusAvailable},
	{ID: "48", Name: "ZUN.IM", Provider: "Dynadot", Price: "¥299", Status: domain.StatusAvailable},
	{ID: "49", Name: "RUN.BZ", Provider: "Namecheap", Price: "¥399", Status: domain.StatusAvailable},
	{ID: "50", Name: "SAY.LI", Provider: "Dynadot", Price: "¥299", Status: domain.StatusAvailable},
	{ID: "51", Name: "CCC.ZONE", Provider: "Spaceship", Price: "¥199", Status: domain.StatusAvailable},
	{ID: "52", Name: "BBS.RENT", Provider: "Spaceship", Price: "¥999", Status: domain.StatusAvailable},
	{ID: "53", Name: "SUJI.PRO", Provider: "Spaceship", Price: "¥299", Status: domain.StatusAvailable},
	{ID: "54", Name: "REPAN.TOP", Provider: "Spaceship", Price: "¥299", Status: domain.StatusAvailable},
	{ID: "55", Name: "YMS.IM", Provider: "Dynadot", Price: "¥199", Status: domain.StatusAvailable},
	{ID: "56", Name: "IFGOO.COM", Provider: "Spaceship", Price: "¥499", Status: domain.StatusAvailable},
	{ID: "57", Name: "OOO.PLUS", Provider: "Spaceship", Price: "¥199", Status: domain.StatusAvailable},
	{ID: "58", Name: "BUZUO.CN", Provider: "Aliyun", Price: "¥299", Status: domain.StatusAvailable},
	{ID: "59", Name: "TI.QUEST", Provider: "Spaceship", Price: "¥99", Status: domain.StatusAvailable},
	{ID: "60", Name: "BLOGER.CLUB", Provider: "Namecheap", Price: "¥299", Status: domain.StatusAvailable},
	{ID: "61", Name: "URLS.BEST", Provider: "Namecheap", Price: "¥699", Status: domain.StatusAvailable},
	{ID: "62", Name: "JIAOCAI.XYZ", Provider: "Spaceship", Price: "¥199", Status: domain.StatusAvailable},
	{ID: "63", Name: "LVKE.ME", Provider: "Namecheap", Price: "¥299", Status: domain.StatusAvailable},
	{ID: "64", Name: "MILV.XYZ", Provider: "Spaceship", Price: "¥199", Status: domain.StatusAvailable},
	{ID: "65", Name: "EDC.PLUS", Provider: "Spaceship", Price: "¥299", Status: domain.StatusAvailable},
	{ID: "66", Name: "LIAOLIAO.SPACE", Provider: "Spaceship", Price: "¥299", Status: domain.StatusAvailable},
	{ID: "67", Name: "BOKEBANG.COM", Provider: "Spaceship", Price: "¥499", Status: domain.StatusAvailable},
}
