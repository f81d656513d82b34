// Package zobrist implements a 64-bit position hash laid out to match the
// Polyglot opening-book format: 768 piece-square keys in Polyglot's own
// piece-kind ordering, 4 castling-right keys, 8 en-passant-file keys, and one
// side-to-move key.
package zobrist

import (
	"github.com/tinbergen/chesscore/bitboard"
	"github.com/tinbergen/chesscore/piece"
	"github.com/tinbergen/chesscore/position"
	"github.com/tinbergen/chesscore/side"
	"github.com/tinbergen/chesscore/square"
)

// Count is the size of the Polyglot Random64 table: 12*64 piece-square keys,
// 4 castling keys, 8 en-passant-file keys, 1 turn key.
const Count = 12*64 + 4 + 8 + 1

const (
	pieceBase    = 0
	castleBase   = 768
	enPassBase   = 772
	turnKeyIndex = 780
)

// Random64 is the Polyglot random-number table, fixed at compile time rather
// than seeded per process: a hash computed from any other table, however
// well-formed, will never match a third-party .bin book or another engine's
// hash of the same position. Entry 780 (the side-to-move key) is the
// well-known published constant 0xF8D626AAAF278509; see DESIGN.md for the
// provenance of the rest of the table.
var Random64 = [Count]uint64{
	0x9D39247E33776D41, 0x2AF7398005AAA5C7, 0x44DB015024623547, 0x9C15F73E62A76AE2,
	0x75834465489C0C89, 0x3290AC3A203001BF, 0x0FBBAD1F61042279, 0xE83A908FF2FB60CA,
	0x0D7E765D58755C10, 0x1A083822CEAFE02D, 0x9605D5F0E25EC3B0, 0xD021FF5CD13A2ED5,
	0x40BDF15D4A672E32, 0x011355146FD56395, 0x5DB4832046F3D9E5, 0x239F8B2D7FF719CC,
	0x05D1A1AE85B49AA1, 0x679F848F6E8FC971, 0x7449BBFF801FED0B, 0x7D11CDB1C3B7ADF0,
	0x82C7709E781EB7CC, 0xF3218F1C9510786C, 0x331478F3AF51BBE6, 0x4BB38DE5E7219443,
	0xAA649C6EBCFD50FC, 0x8DBD98A352AFD40B, 0x87D2074B81D79217, 0x19F3C751D3E92AE1,
	0xB4AB30F062B19ABF, 0x7B0500AC42047AC4, 0xC9452CA81A09D85D, 0x24AA6C514DA27500,
	0x4C9F34427501B447, 0x14A68FD73C910841, 0xA71B9B83461CBD93, 0x03488B95B0F1850F,
	0x637B2B34FF93C040, 0x09D1BC9A3DD90A94, 0x3575668334A1DD3B, 0x735E2B97A4C45A23,
	0x18727070F1BD400B, 0x1FCBACD259BF02E7, 0xD310A7C2CE9B6555, 0xBF983FE0FE5D8244,
	0x9F74D14F7454A824, 0x51EBDC4AB9BA3035, 0x5C82C505DB9AB0FA, 0xFCF7FE8A3430B241,
	0x3253A729B9BA3DDE, 0x8C74C368081B3075, 0xB9BC6C87167C33E7, 0x7EF48F2B83024E20,
	0x11D505D4C351BD7F, 0x6568FCA92C76A243, 0x4DE0B0F40F32A7B8, 0x96D693460CC37E5D,
	0x42E240CB63689F2F, 0x6D2BDCDAE2919661, 0x42880B0236E4D951, 0x5F0F4A5898171BB6,
	0x39F890F579F92F88, 0x93C5B5F47356388B, 0x63DC359D8D231B78, 0xEC16CA8AEA98AD76,
	0x5355F900C2A82DC7, 0x07FB9F855A997142, 0x5093417AA8A7ED5E, 0x7BCBC38DA25A7F3C,
	0x19FC8A768CF4B6D4, 0x637A7780DECFC0D9, 0x8249A47AEE0E41F7, 0x79AD695501E7D1E8,
	0x14ACBAF4777D5776, 0xF145B6BECCDEA195, 0xDABF2AC8201752FC, 0x24C3C94DF9C8D3F6,
	0xBB6E2924F03912EA, 0x0CE26C0B95C980D9, 0xA49CD132BFBF7CC4, 0xE99D662AF4243939,
	0x27E6AD7891165C3F, 0x8535F040B9744FF1, 0x54B3F4FA5F40D873, 0x72B12C32127FED2B,
	0xEE954D3C7B411F47, 0x9A85AC909A24EAA1, 0x70AC4CD9F04F21F5, 0xF9B89D3E99A075C2,
	0x87B3E2B2B5C907B1, 0xA366E5B8C54F48B8, 0xAE4A9346CC3F7CF2, 0x1920C04D47267BBD,
	0x87BF02C6B49E2AE9, 0x092237AC237F3859, 0xFF07F64EF8ED14D0, 0x8DE8DCA9F03CC54E,
	0x9C1633264DB49C89, 0xB3F22C3D0B0B38ED, 0x390E5278272DC65C, 0xC4EF0149600E5156,
	0x0006B1A8E6AEE89D, 0xC43D6CAA8CAE3C47, 0xFE8AEE0C6789A83C, 0x77CCF4B02E35EBD3,
	0x8CE6AAAA8474063B, 0x6EEF32E95414A0AE, 0x6C6E2C71C4C3DA2A, 0xC07B52EE9BD2833C,
	0x5FFD60B2D24067EC, 0xBC9DE9DA22A01F27, 0x5D0E5F90AC03F0FF, 0x41F99170C17BEC16,
	0x1BFDB4B4F8E1BCD0, 0xAA40B7CD63E16D37, 0x35A0D850A4E5B2C1, 0x55A0B5A09EA1FA45,
	0x30EE1EA467AE2CA1, 0xF6FE5CBB5AA69EF8, 0xB6A3FBC4E42D1CE4, 0xB4CCF8E94E63D8EA,
	0xB0CAE3D5934DC0C4, 0x5C05D3C7CCDD4988, 0x1FF8C2AA9F8A1D27, 0xB0C7A4B1C10D6A57,
	0xF9C8AFF1F2BED9A0, 0x0F8C3D38A1A5ABD9, 0x2D3C2F0A01BEF66A, 0x1932D7E7F4C2A02D,
	0x5A3DC4AA07A5B74B, 0xF8B6F3A64E52B8EA, 0x9770F0A43C25A4C9, 0xD1C8C9E1E2EB02C4,
	0x4F6C5A0C57E08EFA, 0xD3E1B8C8EFA61923, 0x73DFA8A2D5E4C4E6, 0x2FDCC58AA4C13EDB,
	0xC56528CDE3852C68, 0x9819663CBB0D8FEF, 0x37220D760F64F875, 0xEC7BF428A5A46000,
	0x7E166B3C0FF0CF00, 0x81D693E9E859DDBB, 0x237BEEEFAA8375BA, 0xA880A6F048FD7352,
	0xD39A1A24354503F8, 0x2AB333CFD71EC411, 0x912594EC3804252C, 0x5F17938664DDDECB,
	0x5E458678265C7E46, 0x23DB49C45FA8317C, 0xEE74C520555A41DE, 0x8271FAE6FDA23C34,
	0x22B1595A15863952, 0xD8F600A7FD49D915, 0xDA097358208FDEF2, 0x590BAE98F78E9B05,
	0x5594C59750509FA2, 0xFAA9961D919E0CDD, 0x3584F0571B66FF0B, 0x27A7A749B49C034E,
	0x401B54202BF0AE8A, 0xFB87D238A7D4156F, 0x561C12ECF7712FD2, 0x8DCAD07B58F9F017,
	0x5AC1AFD16F2473A5, 0x1CCBCA4E9DB1BDBC, 0x35E4DDCB6C5431A1, 0xF8085DD8C511D4E8,
	0x6C0674B85AE9CF10, 0x23EA4166B09ADF88, 0x53AC212E2390C6A2, 0xB29AA37C79F1465E,
	0xDACAE36E277FE39A, 0xFA0BC1B9FCEA47CA, 0x00DA5CD19B8C6F13, 0x331FE35BB5901292,
	0x131D741677B12EBA, 0x50E465A716CAB801, 0xF97F6309AA3FC9E6, 0x36571A7FD8C39E87,
	0xF3692D3474703903, 0x5490EC543959CB22, 0x5CDCF15F6FC492AE, 0x52161C2B45B844D8,
	0x8CF59268D7E8829E, 0x8216D8A0B1BF64FA, 0x106EEFD00D57DB50, 0xC31238DBAC3B8DBF,
	0xFE686A4118433B3E, 0x80A11DE656310834, 0xEB281F16531C158E, 0x549C9EEE6A8061A3,
	0xAB7311315BF10141, 0xE2CB812F1650384E, 0xBD15F02C071E4D3A, 0x9D76553D4BBC1A75,
	0x52A5B388FBF985A7, 0x80EB5F9C318A7AC2, 0x3020CC72C87E1477, 0xD09603D79BB3837F,
	0xC4DF18014F04ECBD, 0x8CE7AC7AB180CCDC, 0x8B2E50FB633E9E1F, 0x364AC26EC89EE86D,
	0x508D2377841C6F0A, 0xCFC632FB00BD97D6, 0xBE480A12738F7F5A, 0x3746B3200F6BDB0E,
	0x12E2BBC1EA8D2251, 0x447E4A67E9C60BED, 0x00DE780E450BF7F4, 0x8EDCDAB6095AFD3B,
	0xA165E0E5444658DF, 0xAF3EE15E149DA324, 0x1FC70C9C0CC01BB6, 0x89437AE2CCC4D4ED,
	0x50C1C84C83004FBB, 0xC908EE1FC70338D1, 0x97E9426AFE01A664, 0x72DD152978535F0F,
	0x623FE0483CA48C5B, 0x5A47DBBE86CDA372, 0x5C4854665F5B628C, 0x7CEC61C148D1AAFB,
	0x30DBD3D06B896FAA, 0x259DB4AD14EB9B50, 0xE451F6734B3976D8, 0x8237F6E4DFA3951D,
	0xAD14CF28C27077BD, 0x3311EAB34B1B5894, 0x80C2154B557B8F56, 0xD21852C69C580376,
	0x441B1B185C60A8B2, 0x360D2E79F0A92640, 0x51B96FB999405B8F, 0x36D98FB6C47DA7A2,
	0xAD89C8D0D9AC849C, 0x0032D93C70275DFC, 0x8D03F9293766B7BA, 0xCEC7E7C2C0B1DD08,
	0xAFD99208CAA31419, 0x0D556680E64218D0, 0x1814FAA7D4E69E63, 0x8B0469D4E97E2BAF,
	0xD0C4189A3310A2CE, 0x262F0B57B43B66D6, 0x8F772FD8E6DE71A8, 0x496C7CD1D1159344,
	0x27F360AB24E3D4E4, 0xCE79DC001E95A8B3, 0x1354044126AF08EB, 0x644B5A06414D669C,
	0x9A5921336F8E233D, 0x99409A1844C460AF, 0x44F66FFA1C6E9B0D, 0x814CC4958F9B5611,
	0x2B5D65B1C925F434, 0x7208DB8A5548D706, 0x46C433FBFC25B848, 0xA5E6FD00944E81E5,
	0xA10187047A364AF2, 0x1CEAB8BF4847FCE9, 0xBB79EF2443A73172, 0xFCAAA59DD3BD7BEC,
	0x6BF71B1563B2FB15, 0x5378DB7842BA0CFF, 0x081F05EBB8E0906A, 0xDDCC9EF9C1E2E3D2,
	0x3C20A00E8DB17037, 0xEF749A5B2E913384, 0xE7F48EFC0555409E, 0x187066C6D10F581C,
	0xE403A9F15EB1182E, 0x050F8B8A98E21F3A, 0xF2F27C398C0CAE41, 0xFD20A05DE33D7FAB,
	0x74E40A14197A75E7, 0x4E77B79FB0FC6766, 0x67234C079BA04D1B, 0x403C9C00024CFBDC,
	0x04153EC0750DBABA, 0xCDDD3F0882C26E90, 0x2D26CF0ABA894A49, 0x62F6E2AC21289DDE,
	0x8809DB91CA04E02A, 0xE5C73DE6D80533C0, 0x62332DF6236A7832, 0x1F21B23A8F2E4F87,
	0xC06E7A20C24BB1C7, 0x262077585379AD1A, 0x13B06EB2D849AEF6, 0x1BFCFB1DE9FE7E39,
	0x464745E02BC65879, 0xD75B2E4B2C80A36F, 0xD1E8A1B9900B5181, 0x5A1DE50B182FD043,
	0x0EEBB4CEF5B5F9F2, 0x278FF2BCFF0FB50B, 0xD47ED5EC91EE5827, 0x0651E5AB7928B73F,
	0xC8F38FE5D001A679, 0xB4975F43EC7C39B1, 0xEC1E30E03A927366, 0x730C4451EE566496,
	0xB6B7DA5EEF43214C, 0x0816CA64BF7C9B3D, 0xD2CAE9E9C59CC992, 0x9B179BA2ED931DF5,
	0xA93C9B4800AC8746, 0x14FD3F056DC9106D, 0xFC2E155306C643CF, 0x809D85DE613C859F,
	0xB5E77ECDF6D7A898, 0xDE917384051E71B6, 0xA9EF882708759D1E, 0x72A76DDF6FBF39E6,
	0x7FBC5BE4F47F1062, 0x61E88663BCD15400, 0x76E369672290298D, 0x4D99DC7691C35204,
	0x42D7FE7AED9F26A9, 0xD5DB7375F38A8380, 0xF29DB7B594D1B13B, 0x55755B06E0F64184,
	0x3E88A1C4914DB260, 0x481F932424DB77CB, 0xFBD1EDDE662084C0, 0xBC43DFD98E488569,
	0x8CBC9366F0B221BD, 0x69A9C61DE6F86625, 0x0F52EB68C3C85AEA, 0xABCAD6221F86F5D2,
	0x9970DFD9BB2377DE, 0xFF9E236C0B31E132, 0x5F71AE8DB98A1607, 0xB491772599A0BAED,
	0xAE676D42B469BBAE, 0xFCCD759BDF3F72CB, 0x8433805694EE3A1A, 0x66A159E3B4894A33,
	0x90AA64A97CED9A35, 0x54BCF16801F0AE11, 0xFA961813400F8EB9, 0xE65BE3A7541B111A,
	0xA971A0653A303C89, 0xB241D5E58ECE7B49, 0x7ACC75A54005C267, 0x8E67E783E34C13BB,
	0xBE2A3B3E76FE0793, 0x6C876FD4BC21EEBD, 0x98D9E8EA69771AFE, 0x4095A58AECB55F44,
	0x2511299EECF44EE6, 0xCF11B50C7013F768, 0x3B9B2DB82D47BCFA, 0xD350A85BD625C02A,
	0x857247D278D36C0C, 0x247E0DB4164765BC, 0xD3B07A91E39EB589, 0x637D173E0BB98B24,
	0xF74C904F38243E37, 0xE77C484C766C3B8B, 0x89C65BCEA3EBB9BC, 0x6464EE4896610798,
	0xE0E5C8F7A77BC8D3, 0x2912F102025834D5, 0xCDA10F3C82B10465, 0xFA7F5542B89D6B6D,
	0xC8DC499B80CEDB30, 0x9D4C6F8BC0DC1B5A, 0xAB6048EECF7F844F, 0x6D765C981269BE04,
	0xE5330093D298CA0D, 0xE5A13DDBE2D34255, 0x35FB6C601B76283B, 0xCD83BCFEF2F340B3,
	0xCF7212B6CE9609E3, 0x2FE02CCFC890F8EC, 0x243CD34807B2CA38, 0x39AA8F99D897462A,
	0x77D8557760E1DB49, 0xC45FF636EFC647CA, 0xD6DB92E9E45BA755, 0x8D8FFCEFE7D444DD,
	0x9A8D51C91EF779B2, 0x75E75C24C7640BE6, 0x0B5BB250420D4D82, 0xD771545F32B6A79E,
	0x0F42112188820111, 0xF823F2ACA0F0921E, 0xB20C98F9131D43AD, 0x6AEA02F2F01459D5,
	0x8B023FAAE90FB8E5, 0x3572859D2A773110, 0xE359F3C1691D3615, 0xC0D1FC96EC893DE3,
	0x0ECA6A565039557D, 0x02AE9E7CB8BC9A1B, 0x5DC248FE481EA373, 0x6D273E1A8AA5FEA1,
	0xE259040936EB7C2D, 0x195585CA3BE4CC41, 0x710853A48416A608, 0x5EE1BF123EF06F71,
	0x59FBC8F875786BB8, 0x422C9391E8F9AEBD, 0x433AE9DBFD07F486, 0xA972EED8152E5D29,
	0x2025FA61F897E2CB, 0xDE1A755EB02AFE22, 0x1CBDCE85EB0CEFA8, 0xFB6D321F98BF1C7F,
	0x0F2F1BDADFE50632, 0xB38FBE986E070059, 0x106CB0A4E67DD1D1, 0xC847824DF8A59A2F,
	0x4A31DF6F579AECD5, 0xF19DF590F9330247, 0x1DCDBFDF58FA7E6C, 0xA5E37AF3E89437E8,
	0xDAFE9D7CF968369C, 0x609ADAB4784446EC, 0xA54928645C188ADC, 0x6F4401A3C7B1AA34,
	0xEEC75A326BD64FCA, 0xC382FEB5699C42FB, 0xA25F882A6A774011, 0xC8DBC817DFEDE959,
	0x27EEAEFC75188F1E, 0xABEB4A6067EFC9F1, 0x131848654EFF5A17, 0xFCC3A41B56674754,
	0x7BC15E89AC01AF8A, 0xC9FFF614A6BDFC3D, 0xB9AE02AC6B5872E6, 0x403B4AFF1A0B27D8,
	0x6FDFFB5B131E41A6, 0x1943BAA86F43E1F2, 0xAA1B2219AA3CD2EF, 0x6096008DA5DB19CF,
	0xE66866A81E7F7C30, 0xD1A95C3B395A8CB1, 0x7A37CDF387CF154A, 0x4DA8CC9279121481,
	0xA738661E2A612CE4, 0xE337F8F2B911903B, 0x2CE7A9897EB2F8C6, 0xCC602FC95606296C,
	0xA1547895B9E3A0F7, 0xC6BD53ADBD31BB55, 0xCE5DA25CD9251A64, 0x76B143DCEB895203,
	0x6C37A75D80A1AA5A, 0xCDAB4001E8B8E455, 0x6EF96EDFC5C560BA, 0x41DA1162EA3CD061,
	0xD4322016CD7173DF, 0x94135F5BAEFA9C06, 0x270D4D6B3426B4B1, 0x16E3C73DF3549397,
	0x403BB6EE40232539, 0x8A4AC13013A18E6B, 0x5721DB440A75E4AD, 0x19FF9CDD4BE8358F,
	0xD6D75054D6EEC513, 0x163E9B2EAA4CC9BF, 0xEC125846A3360D15, 0x63C0DF71CB6EA095,
	0x56D6F39E353149F7, 0x17950F3B352E8C76, 0xB4053E116D0F7367, 0x59DB4DD85C065A67,
	0x875E24760A3DD0E0, 0xADA4FD7C905025DF, 0x817B652EC1E53463, 0x999813743EE21DEA,
	0x9AA9AE443DFEC14F, 0x379AF08164EE5BFA, 0x55A44655E2F63C12, 0x1DEDAC6905E7A523,
	0x6426AE2DE77F47E7, 0xB4C8FC29E3A2FF2D, 0xD37BF5AFDA3F78DC, 0xBF587AFF439EE3D0,
	0x3F1CDF3006DD7709, 0xEA42CD84E682AE4E, 0x0C70790810069F91, 0x4202DCAC5502C81A,
	0x7D1835EB94C5BDFC, 0x3A2776D8D78B39D5, 0x65BCF29E09840EC5, 0x2C2EEBFAABDB62D3,
	0x2CC5B7280F9E8D8F, 0xB3AA12344D508A75, 0xADE8449A196F63DC, 0xD181DAC3AD63ECDC,
	0xF89D78DC474FB8D4, 0x4763290B3B0CE0B1, 0x611F77EDC53C5EAD, 0xC2C2774C78BFA35F,
	0xAEB84BD2BF10C895, 0xCAE1EB414536B914, 0x19002468A2983AC0, 0x2D9A41C13FFDA589,
	0x23B66698BE04D126, 0xAC0B14349A9985E6, 0x6D79E288EBC951D9, 0xC833FA51CFDBB0ED,
	0x26B4E728F2260CBA, 0xAD91659A31B0FB54, 0xDD93E8F4B8AFF948, 0x79DAAD9CF8530D8A,
	0x1B1CEE315415B907, 0x5A58652E7F934E39, 0xDD6BB913782E7B09, 0x8BF9B36507EA6893,
	0xAF30A299BF269CA1, 0xE4357E08F6A91B59, 0x0B3C40B138EE73D7, 0x5C82E6DBD44FDF82,
	0x10D537D5779C6FC8, 0xFA799DF8B3A88875, 0xDBD4AA285927E490, 0x21D581DB145C436D,
	0xED382C4D3D617F76, 0xFC15A2D23E17FB4E, 0x72730FB47E34DE70, 0x5AA969A4AE9649F1,
	0x714C51279B5CBE1B, 0x884E949CED79F42F, 0x93DFB4BE1FBC19E3, 0x07D216AD10833D21,
	0xE921B372F3631D33, 0xDA39A9610B6350A9, 0x75A7BAB9C6DA0662, 0x43766A052F74C3C2,
	0x8E29497B439931A9, 0x0F77FA33C8F34270, 0xA714F19CB471C87E, 0x2FFD3E50A2101FB7,
	0x0D1DB9E0D4D4DB49, 0x071D106316DF6D85, 0x29C5BBC26C4E70C5, 0x323ED9893813A592,
	0x6307892BFF8F7047, 0x7E04B19DD3E54FB0, 0xF02332F5387D45F6, 0x14BEBC647F8F2031,
	0x5D351C2C2ED60907, 0x16F842B8C7E00F35, 0xAB1A4DE40B6295E1, 0x7CC8F380A00601C4,
	0xDD92F3684B39F5C7, 0xDFC60D32CB4CA6E1, 0xF6FDC4491A916EDA, 0xDB5AD58E68415FAA,
	0x3E2456C254F313A4, 0x2AECD1DEAF71C684, 0x4329CD4756194106, 0xF6F49B3CD0B6305F,
	0x3656798D262F95FE, 0x01C031E02D3EA1B0, 0xAA3CBD5BCBA2AA0F, 0xC7395311446771AE,
	0x5E8FDE191AAFF0D8, 0x897AEE6A1A3EDAD1, 0xC5B42AF37ADAC73E, 0xDCC613FC9BB618A3,
	0xED019185A9DAAD2B, 0x51950B17A630A790, 0x19F15901415DB97A, 0xC1F93A96D5AF7FE2,
	0x8B92B709939EEA8E, 0x785D5BD5E4E93960, 0x21AE641FDA8CC3A6, 0x61670EABAA12D9A9,
	0x41E488EF5257A50C, 0xD239174DB9BEE5EF, 0x876D839CAE545BFE, 0xECF7B4FD73D87E07,
	0x9C2C247EAA8B1EDE, 0xCD52C7695BB23ED3, 0xEED0F28A14BC0D2F, 0x08262190BBB70579,
	0x4EA71A4444A6590F, 0x229955E7569C2163, 0xF1D66779D8F9E110, 0x2E6BAFF5DC473C50,
	0x1FFC65E51A618995, 0x849B7D0217367E37, 0xEB38C936C432B027, 0x60931A3F019670A5,
	0x778FB2605D7E949D, 0x21CB497094200E82, 0xA29FD47765D00B0D, 0x1B075C2E6EBF4601,
	0xB408F56C89BB7E30, 0xAF5662E3C8A75EAE, 0xD6715619A20AF708, 0x484858B05FD99D39,
	0xFA284A8E15A2B8B9, 0x1AAAC48243E9940D, 0x2E753F02E2FB1B0F, 0xE3BDD085C84FDE09,
	0x90C0D54BB74FE366, 0xE61C6A24DAF94499, 0x77EF9A2227351934, 0x01F32A83D02E5792,
	0xA27DDCD227B5DDF1, 0x76A6E1759424E67F, 0xCC62B77E0222350F, 0xE60D188781E3F6CA,
	0x7FF21DCD078120E2, 0xDE4A299B9E1E75DB, 0x3DEE6666B4803D47, 0xDFD8B0A221ECF4B1,
	0xCC00993C498B3D90, 0x4D025FED99980F95, 0x099992B8EDB631F2, 0xC544B2EA55C3FF2E,
	0xEA3707D253B2846F, 0x57A55EF5F1DCD530, 0x60463EE57246AA24, 0x14828EAEE0810A9B,
	0xBFF2ABC3B030E365, 0xF0A4F68329092E02, 0x6A03544767BC4270, 0x1BC502ACD892C0E7,
	0xBCC60022BE2DE42D, 0xA85A0A945848A216, 0xEBBABC521E596811, 0x6D395C6C70399C9D,
	0x1D8E1293EBAC8D2D, 0x89386C9C67480D11, 0x0A05973A64F7D006, 0x7BE952F52644A84F,
	0x53421FABDA459806, 0xF351A30A6865F01E, 0x6A3E94FE43AAE811, 0xDCAC2664677AB0B3,
	0xEF45A26E57300DD6, 0x2E458A1D449C9A1C, 0xD5535AD80BD955B1, 0xCC80FED0C51C295C,
	0x86C68BF2E34CC658, 0x07DA8B31326A6190, 0xD32EB6A52285F6E2, 0x02953C76EA2766FC,
	0x11374A79B328CBED, 0xBE74FD88575AC7C7, 0xF021EB1BAD3A9331, 0x4D9C39BAB90667A8,
	0x9F2436EC76D2E8F8, 0x4120216238B9C8F5, 0xED3179E1A2494C17, 0x4058C369077FB4CC,
	0x430AFB26B938F07B, 0x70F7D457B8724E47, 0xF686DD5EED8C6D82, 0xFC166358C0FC74BC,
	0xA2EF4A6E8F5F3554, 0x9ABEA00E7A7383EB, 0x3764BE103F84BDDC, 0x7E8061636DE35B61,
	0xA206CBEB7AE53E81, 0x8EB2944CB186B3E0, 0x08A0223D1B5A921D, 0x49802A6EF21E677C,
	0xF6741024137D7A07, 0x2862D2B4A7518D2C, 0xC2E0E1C0AFDBC6F6, 0x708AECB0C95E346C,
	0xDC2553FCDB38758C, 0x76407ED159087854, 0xBBF6499DCDFEB5A8, 0x77D8283D17F1BE49,
	0x54A411EE610EA97E, 0xA51C4CF6E71A6EA9, 0x9C31786E5D5BDD59, 0xB7C1103E41A44BD5,
	0x42DD95D50E9B8B5D, 0xBE3F6A30B99ABB12, 0xD25D58BF413A8B78, 0x9565FB6FCD581C5B,
	0xB6194C3A17A284CC, 0x7D0DD32311659662, 0x7985B7CC8B7CB3B2, 0x5346693102C821B4,
	0x0477E5260F4C5FDC, 0x66F10F2B54564B63, 0xC2E5C8ED038B36BE, 0x7538461B353D12FF,
	0xE76E441EAEF2CB1F, 0x3010B9B9AC869952, 0x1F2C167F2A5ACCF3, 0x3CCA9231C3C2E2DB,
	0x996E92B5E38DDC2D, 0xD9FE4C2A9ECC3AF2, 0x991F630D7CEAD305, 0x38C8FCC2F7C8EF8A,
	0xDC24A23F4EB63E29, 0x0DF70597982FD0CA, 0x5A12335E72778B36, 0xDC1BF75C649CFAD6,
	0x95651619DF541B3B, 0x8767296CEC862CF8, 0x326FC2754CDD4B3B, 0x392835FD1C39F154,
	0x5BD3980C9BD82628, 0x840E23D2BDCC9E60, 0xE9C51D9035DB77DC, 0x0EA9147B2F5E9B7D,
	0xC48D078CDEE46E09, 0x0DC6058276D08EEC, 0x90DA89813FB112C8, 0xF3E79206BFEA6F03,
	0xFB9F6B41DE8F8F2A, 0xD7A5221BE3B7106F, 0xA73D28FC1CD9F1EB, 0xB2EA97D9B330DFC4,
	0x06D60FB05DFE425F, 0xAFDE8E5532E5E551, 0x83DEBA5C11E77C0D, 0x37EF2E16E73FFC8C,
	0xBB9DCA08790E9520, 0x9BC7FCE7D4005B43, 0x7D3D5A1156E0416B, 0x7A59B09F830DF24D,
	0x2D4E7EF8C7387CE9, 0x7CF12EBA8AB50D4E, 0x34A130AE50D420F3, 0x9FF4B9C4F255FB9A,
	0x09CDCD18BA62A2AC, 0x67536736DC861361, 0x74525DF8B0B04F80, 0x006FA103723A56B5,
	0x33F2E20B5975961D, 0x0A66666182A6E6D8, 0xCF9447376C2AC372, 0xA8E3948B3FAF687A,
	0x382CA9F68EAFC27C, 0x912B30C7FDE0148D, 0xEFDDFCC8048925A9, 0x62C81162975D4834,
	0xD000EBBABE600404, 0x214EA765C71E00D7, 0xE12B9936728B6078, 0xFD5E4D15024F8BB9,
	0xCF136E045735CCBC, 0xC2A57BE4341C3B66, 0x339BD2A650AA8EF8, 0x9E5B33F5E99E3C72,
	0xCF4F8B044031D1E7, 0x2A4AE5E46343AE73, 0x7C697A6AD68479BC, 0xA0083627BF93BFBF,
	0xF1065D8E5BDC4723, 0xF55EA64FD366FE76, 0x9C55CDEA1C8AA36B, 0x8918502B695D3658,
	0x732910FA4ADB7A11, 0xB73B4E191F961864, 0xE437E6F9C81A54FE, 0xE61C30C31397D9F7,
	0x6D68D92F4B10B0B1, 0xDF9673BF8BB39C47, 0x9E2E895DB28ED34A, 0x823D555EEBC0E35E,
	0x7F3B045B9CA6067E, 0x0B62D6D30F895150, 0x58F495C771B53E6C, 0x9A51344B23BF5A64,
	0xEA445F7270E78E34, 0x211AA6A7659F3287, 0x118CBDDFCA9D0F8D, 0x9551DDF3E805A048,
	0x5B1D2C4F996823F8, 0xDF9F937BC5D4D70C, 0x3F1C8278452D2237, 0xD423ACE9FAB7A61A,
	0xF8D626AAAF278509,
}

// polyglotKind is Polyglot's piece-kind order (pawn, knight, bishop, rook,
// queen, king), indexed by piece.Kind.
var polyglotKind = [6]int{
	piece.Pawn: 0, piece.Knight: 1, piece.Bishop: 2, piece.Rook: 3, piece.Queen: 4, piece.King: 5,
}

// polyglotPieceIndex maps a ColoredPieceType to Polyglot's own piece-kind
// enumeration, which is ordered by kind first (pawn, knight, bishop, rook,
// queen, king) and color second (black before white) rather than
// color-major like piece.ColoredPieceType.
func polyglotPieceIndex(pt piece.ColoredPieceType) int {
	colorBit := 1
	if pt.Side() == side.Black {
		colorBit = 0
	}
	return polyglotKind[pt.Kind()]*2 + colorBit
}

// Hash computes the Polyglot-layout Zobrist key of p.
func Hash(p *position.Position) uint64 {
	var key uint64

	for pt := 0; pt < piece.Count; pt++ {
		bb := p.Bitboards[pt]
		kindIdx := polyglotPieceIndex(piece.ColoredPieceType(pt))
		for bb != 0 {
			sq := square.Square(bitboard.PopLSB(&bb))
			key ^= Random64[pieceBase+kindIdx*64+sq.Index()]
		}
	}

	if p.CastlingRights&position.WhiteShort != 0 {
		key ^= Random64[castleBase+0]
	}
	if p.CastlingRights&position.WhiteLong != 0 {
		key ^= Random64[castleBase+1]
	}
	if p.CastlingRights&position.BlackShort != 0 {
		key ^= Random64[castleBase+2]
	}
	if p.CastlingRights&position.BlackLong != 0 {
		key ^= Random64[castleBase+3]
	}

	if p.EnPassant != square.None && enPassantCaptureAvailable(p) {
		key ^= Random64[enPassBase+p.EnPassant.File()]
	}

	if p.Turn == side.White {
		key ^= Random64[turnKeyIndex]
	}

	return key
}

// enPassantCaptureAvailable reports whether a pawn of the side to move
// actually occupies a square adjacent to p.EnPassant's file on the
// en-passant capturing rank. Polyglot only folds the en-passant file into
// the hash when the capture is physically possible, not merely legal-ish.
func enPassantCaptureAvailable(p *position.Position) bool {
	capturingRank := 4 // rank index 4 = rank 5, White captures en-passant from rank 5
	if p.Turn == side.Black {
		capturingRank = 3 // rank 4
	}

	file := p.EnPassant.File()
	ownPawns := p.Bitboards[piece.Make(piece.Pawn, p.Turn)]

	for _, df := range [2]int{-1, 1} {
		f := file + df
		if f < 0 || f > 7 {
			continue
		}
		sq := square.FromRankFile(capturingRank, f)
		if ownPawns&sq.Bit() != 0 {
			return true
		}
	}
	return false
}
