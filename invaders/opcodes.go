package invaders

// buildInstructionTable wires all 256 opcodes to their executors, sizes,
// and base cycle costs, per the Intel 8080 Programmer's Manual. The 8080
// treats the undocumented encodings as aliases: 0x08-family bytes are
// NOPs, 0xCB is JMP, 0xD9 is RET, and 0xDD/0xED/0xFD are CALL. RIM and
// SIM exist only on the 8085 and execute as NOPs here.
//
// Conditional CALL and RET entries carry their not-taken cost; the
// executors report the extra 6 cycles of a taken branch.
func (cpu *Cpu8080) buildInstructionTable() {
	cpu.InstLookup = [16 * 16]Instruction{
		// 0x00
		{"NOP", cpu.opNOP, 1, 4}, {"LXI B", cpu.opLXI(&cpu.B, &cpu.C), 3, 10}, {"STAX B", cpu.opSTAX(&cpu.B, &cpu.C), 1, 7}, {"INX B", cpu.opINX(&cpu.B, &cpu.C), 1, 5},
		{"INR B", cpu.opINR(&cpu.B), 1, 5}, {"DCR B", cpu.opDCR(&cpu.B), 1, 5}, {"MVI B", cpu.opMVI(&cpu.B), 2, 7}, {"RLC", cpu.opRLC, 1, 4},
		{"NOP", cpu.opNOP, 1, 4}, {"DAD B", cpu.opDAD(&cpu.B, &cpu.C), 1, 10}, {"LDAX B", cpu.opLDAX(&cpu.B, &cpu.C), 1, 7}, {"DCX B", cpu.opDCX(&cpu.B, &cpu.C), 1, 5},
		{"INR C", cpu.opINR(&cpu.C), 1, 5}, {"DCR C", cpu.opDCR(&cpu.C), 1, 5}, {"MVI C", cpu.opMVI(&cpu.C), 2, 7}, {"RRC", cpu.opRRC, 1, 4},

		// 0x10
		{"NOP", cpu.opNOP, 1, 4}, {"LXI D", cpu.opLXI(&cpu.D, &cpu.E), 3, 10}, {"STAX D", cpu.opSTAX(&cpu.D, &cpu.E), 1, 7}, {"INX D", cpu.opINX(&cpu.D, &cpu.E), 1, 5},
		{"INR D", cpu.opINR(&cpu.D), 1, 5}, {"DCR D", cpu.opDCR(&cpu.D), 1, 5}, {"MVI D", cpu.opMVI(&cpu.D), 2, 7}, {"RAL", cpu.opRAL, 1, 4},
		{"NOP", cpu.opNOP, 1, 4}, {"DAD D", cpu.opDAD(&cpu.D, &cpu.E), 1, 10}, {"LDAX D", cpu.opLDAX(&cpu.D, &cpu.E), 1, 7}, {"DCX D", cpu.opDCX(&cpu.D, &cpu.E), 1, 5},
		{"INR E", cpu.opINR(&cpu.E), 1, 5}, {"DCR E", cpu.opDCR(&cpu.E), 1, 5}, {"MVI E", cpu.opMVI(&cpu.E), 2, 7}, {"RAR", cpu.opRAR, 1, 4},

		// 0x20
		{"RIM", cpu.opNOP, 1, 4}, {"LXI H", cpu.opLXI(&cpu.H, &cpu.L), 3, 10}, {"SHLD", cpu.opSHLD, 3, 16}, {"INX H", cpu.opINX(&cpu.H, &cpu.L), 1, 5},
		{"INR H", cpu.opINR(&cpu.H), 1, 5}, {"DCR H", cpu.opDCR(&cpu.H), 1, 5}, {"MVI H", cpu.opMVI(&cpu.H), 2, 7}, {"DAA", cpu.opDAA, 1, 4},
		{"NOP", cpu.opNOP, 1, 4}, {"DAD H", cpu.opDAD(&cpu.H, &cpu.L), 1, 10}, {"LHLD", cpu.opLHLD, 3, 16}, {"DCX H", cpu.opDCX(&cpu.H, &cpu.L), 1, 5},
		{"INR L", cpu.opINR(&cpu.L), 1, 5}, {"DCR L", cpu.opDCR(&cpu.L), 1, 5}, {"MVI L", cpu.opMVI(&cpu.L), 2, 7}, {"CMA", cpu.opCMA, 1, 4},

		// 0x30
		{"SIM", cpu.opNOP, 1, 4}, {"LXI SP", cpu.opLXISP, 3, 10}, {"STA", cpu.opSTA, 3, 13}, {"INX SP", cpu.opINXSP, 1, 5},
		{"INR M", cpu.opINRM, 1, 10}, {"DCR M", cpu.opDCRM, 1, 10}, {"MVI M", cpu.opMVIM, 2, 10}, {"STC", cpu.opSTC, 1, 4},
		{"NOP", cpu.opNOP, 1, 4}, {"DAD SP", cpu.opDADSP, 1, 10}, {"LDA", cpu.opLDA, 3, 13}, {"DCX SP", cpu.opDCXSP, 1, 5},
		{"INR A", cpu.opINR(&cpu.A), 1, 5}, {"DCR A", cpu.opDCR(&cpu.A), 1, 5}, {"MVI A", cpu.opMVI(&cpu.A), 2, 7}, {"CMC", cpu.opCMC, 1, 4},

		// 0x40
		{"MOV B,B", cpu.opMOV(&cpu.B, &cpu.B), 1, 5}, {"MOV B,C", cpu.opMOV(&cpu.B, &cpu.C), 1, 5}, {"MOV B,D", cpu.opMOV(&cpu.B, &cpu.D), 1, 5}, {"MOV B,E", cpu.opMOV(&cpu.B, &cpu.E), 1, 5},
		{"MOV B,H", cpu.opMOV(&cpu.B, &cpu.H), 1, 5}, {"MOV B,L", cpu.opMOV(&cpu.B, &cpu.L), 1, 5}, {"MOV B,M", cpu.opMOVFromM(&cpu.B), 1, 7}, {"MOV B,A", cpu.opMOV(&cpu.B, &cpu.A), 1, 5},
		{"MOV C,B", cpu.opMOV(&cpu.C, &cpu.B), 1, 5}, {"MOV C,C", cpu.opMOV(&cpu.C, &cpu.C), 1, 5}, {"MOV C,D", cpu.opMOV(&cpu.C, &cpu.D), 1, 5}, {"MOV C,E", cpu.opMOV(&cpu.C, &cpu.E), 1, 5},
		{"MOV C,H", cpu.opMOV(&cpu.C, &cpu.H), 1, 5}, {"MOV C,L", cpu.opMOV(&cpu.C, &cpu.L), 1, 5}, {"MOV C,M", cpu.opMOVFromM(&cpu.C), 1, 7}, {"MOV C,A", cpu.opMOV(&cpu.C, &cpu.A), 1, 5},

		// 0x50
		{"MOV D,B", cpu.opMOV(&cpu.D, &cpu.B), 1, 5}, {"MOV D,C", cpu.opMOV(&cpu.D, &cpu.C), 1, 5}, {"MOV D,D", cpu.opMOV(&cpu.D, &cpu.D), 1, 5}, {"MOV D,E", cpu.opMOV(&cpu.D, &cpu.E), 1, 5},
		{"MOV D,H", cpu.opMOV(&cpu.D, &cpu.H), 1, 5}, {"MOV D,L", cpu.opMOV(&cpu.D, &cpu.L), 1, 5}, {"MOV D,M", cpu.opMOVFromM(&cpu.D), 1, 7}, {"MOV D,A", cpu.opMOV(&cpu.D, &cpu.A), 1, 5},
		{"MOV E,B", cpu.opMOV(&cpu.E, &cpu.B), 1, 5}, {"MOV E,C", cpu.opMOV(&cpu.E, &cpu.C), 1, 5}, {"MOV E,D", cpu.opMOV(&cpu.E, &cpu.D), 1, 5}, {"MOV E,E", cpu.opMOV(&cpu.E, &cpu.E), 1, 5},
		{"MOV E,H", cpu.opMOV(&cpu.E, &cpu.H), 1, 5}, {"MOV E,L", cpu.opMOV(&cpu.E, &cpu.L), 1, 5}, {"MOV E,M", cpu.opMOVFromM(&cpu.E), 1, 7}, {"MOV E,A", cpu.opMOV(&cpu.E, &cpu.A), 1, 5},

		// 0x60
		{"MOV H,B", cpu.opMOV(&cpu.H, &cpu.B), 1, 5}, {"MOV H,C", cpu.opMOV(&cpu.H, &cpu.C), 1, 5}, {"MOV H,D", cpu.opMOV(&cpu.H, &cpu.D), 1, 5}, {"MOV H,E", cpu.opMOV(&cpu.H, &cpu.E), 1, 5},
		{"MOV H,H", cpu.opMOV(&cpu.H, &cpu.H), 1, 5}, {"MOV H,L", cpu.opMOV(&cpu.H, &cpu.L), 1, 5}, {"MOV H,M", cpu.opMOVFromM(&cpu.H), 1, 7}, {"MOV H,A", cpu.opMOV(&cpu.H, &cpu.A), 1, 5},
		{"MOV L,B", cpu.opMOV(&cpu.L, &cpu.B), 1, 5}, {"MOV L,C", cpu.opMOV(&cpu.L, &cpu.C), 1, 5}, {"MOV L,D", cpu.opMOV(&cpu.L, &cpu.D), 1, 5}, {"MOV L,E", cpu.opMOV(&cpu.L, &cpu.E), 1, 5},
		{"MOV L,H", cpu.opMOV(&cpu.L, &cpu.H), 1, 5}, {"MOV L,L", cpu.opMOV(&cpu.L, &cpu.L), 1, 5}, {"MOV L,M", cpu.opMOVFromM(&cpu.L), 1, 7}, {"MOV L,A", cpu.opMOV(&cpu.L, &cpu.A), 1, 5},

		// 0x70
		{"MOV M,B", cpu.opMOVToM(&cpu.B), 1, 7}, {"MOV M,C", cpu.opMOVToM(&cpu.C), 1, 7}, {"MOV M,D", cpu.opMOVToM(&cpu.D), 1, 7}, {"MOV M,E", cpu.opMOVToM(&cpu.E), 1, 7},
		{"MOV M,H", cpu.opMOVToM(&cpu.H), 1, 7}, {"MOV M,L", cpu.opMOVToM(&cpu.L), 1, 7}, {"HLT", cpu.opHLT, 1, 7}, {"MOV M,A", cpu.opMOVToM(&cpu.A), 1, 7},
		{"MOV A,B", cpu.opMOV(&cpu.A, &cpu.B), 1, 5}, {"MOV A,C", cpu.opMOV(&cpu.A, &cpu.C), 1, 5}, {"MOV A,D", cpu.opMOV(&cpu.A, &cpu.D), 1, 5}, {"MOV A,E", cpu.opMOV(&cpu.A, &cpu.E), 1, 5},
		{"MOV A,H", cpu.opMOV(&cpu.A, &cpu.H), 1, 5}, {"MOV A,L", cpu.opMOV(&cpu.A, &cpu.L), 1, 5}, {"MOV A,M", cpu.opMOVFromM(&cpu.A), 1, 7}, {"MOV A,A", cpu.opMOV(&cpu.A, &cpu.A), 1, 5},

		// 0x80
		{"ADD B", cpu.opADD(&cpu.B), 1, 4}, {"ADD C", cpu.opADD(&cpu.C), 1, 4}, {"ADD D", cpu.opADD(&cpu.D), 1, 4}, {"ADD E", cpu.opADD(&cpu.E), 1, 4},
		{"ADD H", cpu.opADD(&cpu.H), 1, 4}, {"ADD L", cpu.opADD(&cpu.L), 1, 4}, {"ADD M", cpu.opADDM, 1, 7}, {"ADD A", cpu.opADD(&cpu.A), 1, 4},
		{"ADC B", cpu.opADC(&cpu.B), 1, 4}, {"ADC C", cpu.opADC(&cpu.C), 1, 4}, {"ADC D", cpu.opADC(&cpu.D), 1, 4}, {"ADC E", cpu.opADC(&cpu.E), 1, 4},
		{"ADC H", cpu.opADC(&cpu.H), 1, 4}, {"ADC L", cpu.opADC(&cpu.L), 1, 4}, {"ADC M", cpu.opADCM, 1, 7}, {"ADC A", cpu.opADC(&cpu.A), 1, 4},

		// 0x90
		{"SUB B", cpu.opSUB(&cpu.B), 1, 4}, {"SUB C", cpu.opSUB(&cpu.C), 1, 4}, {"SUB D", cpu.opSUB(&cpu.D), 1, 4}, {"SUB E", cpu.opSUB(&cpu.E), 1, 4},
		{"SUB H", cpu.opSUB(&cpu.H), 1, 4}, {"SUB L", cpu.opSUB(&cpu.L), 1, 4}, {"SUB M", cpu.opSUBM, 1, 7}, {"SUB A", cpu.opSUB(&cpu.A), 1, 4},
		{"SBB B", cpu.opSBB(&cpu.B), 1, 4}, {"SBB C", cpu.opSBB(&cpu.C), 1, 4}, {"SBB D", cpu.opSBB(&cpu.D), 1, 4}, {"SBB E", cpu.opSBB(&cpu.E), 1, 4},
		{"SBB H", cpu.opSBB(&cpu.H), 1, 4}, {"SBB L", cpu.opSBB(&cpu.L), 1, 4}, {"SBB M", cpu.opSBBM, 1, 7}, {"SBB A", cpu.opSBB(&cpu.A), 1, 4},

		// 0xA0
		{"ANA B", cpu.opANA(&cpu.B), 1, 4}, {"ANA C", cpu.opANA(&cpu.C), 1, 4}, {"ANA D", cpu.opANA(&cpu.D), 1, 4}, {"ANA E", cpu.opANA(&cpu.E), 1, 4},
		{"ANA H", cpu.opANA(&cpu.H), 1, 4}, {"ANA L", cpu.opANA(&cpu.L), 1, 4}, {"ANA M", cpu.opANAM, 1, 7}, {"ANA A", cpu.opANA(&cpu.A), 1, 4},
		{"XRA B", cpu.opXRA(&cpu.B), 1, 4}, {"XRA C", cpu.opXRA(&cpu.C), 1, 4}, {"XRA D", cpu.opXRA(&cpu.D), 1, 4}, {"XRA E", cpu.opXRA(&cpu.E), 1, 4},
		{"XRA H", cpu.opXRA(&cpu.H), 1, 4}, {"XRA L", cpu.opXRA(&cpu.L), 1, 4}, {"XRA M", cpu.opXRAM, 1, 7}, {"XRA A", cpu.opXRA(&cpu.A), 1, 4},

		// 0xB0
		{"ORA B", cpu.opORA(&cpu.B), 1, 4}, {"ORA C", cpu.opORA(&cpu.C), 1, 4}, {"ORA D", cpu.opORA(&cpu.D), 1, 4}, {"ORA E", cpu.opORA(&cpu.E), 1, 4},
		{"ORA H", cpu.opORA(&cpu.H), 1, 4}, {"ORA L", cpu.opORA(&cpu.L), 1, 4}, {"ORA M", cpu.opORAM, 1, 7}, {"ORA A", cpu.opORA(&cpu.A), 1, 4},
		{"CMP B", cpu.opCMP(&cpu.B), 1, 4}, {"CMP C", cpu.opCMP(&cpu.C), 1, 4}, {"CMP D", cpu.opCMP(&cpu.D), 1, 4}, {"CMP E", cpu.opCMP(&cpu.E), 1, 4},
		{"CMP H", cpu.opCMP(&cpu.H), 1, 4}, {"CMP L", cpu.opCMP(&cpu.L), 1, 4}, {"CMP M", cpu.opCMPM, 1, 7}, {"CMP A", cpu.opCMP(&cpu.A), 1, 4},

		// 0xC0
		{"RNZ", cpu.opRETIf(StatusFlagZ, false), 1, 5}, {"POP B", cpu.opPOP(&cpu.B, &cpu.C), 1, 10}, {"JNZ", cpu.opJMPIf(StatusFlagZ, false), 3, 10}, {"JMP", cpu.opJMP, 3, 10},
		{"CNZ", cpu.opCALLIf(StatusFlagZ, false), 3, 11}, {"PUSH B", cpu.opPUSH(&cpu.B, &cpu.C), 1, 11}, {"ADI", cpu.opADI, 2, 7}, {"RST 0", cpu.opRST(0), 1, 11},
		{"RZ", cpu.opRETIf(StatusFlagZ, true), 1, 5}, {"RET", cpu.opRET, 1, 10}, {"JZ", cpu.opJMPIf(StatusFlagZ, true), 3, 10}, {"JMP", cpu.opJMP, 3, 10},
		{"CZ", cpu.opCALLIf(StatusFlagZ, true), 3, 11}, {"CALL", cpu.opCALL, 3, 17}, {"ACI", cpu.opACI, 2, 7}, {"RST 1", cpu.opRST(1), 1, 11},

		// 0xD0
		{"RNC", cpu.opRETIf(StatusFlagC, false), 1, 5}, {"POP D", cpu.opPOP(&cpu.D, &cpu.E), 1, 10}, {"JNC", cpu.opJMPIf(StatusFlagC, false), 3, 10}, {"OUT", cpu.opOUT, 2, 10},
		{"CNC", cpu.opCALLIf(StatusFlagC, false), 3, 11}, {"PUSH D", cpu.opPUSH(&cpu.D, &cpu.E), 1, 11}, {"SUI", cpu.opSUI, 2, 7}, {"RST 2", cpu.opRST(2), 1, 11},
		{"RC", cpu.opRETIf(StatusFlagC, true), 1, 5}, {"RET", cpu.opRET, 1, 10}, {"JC", cpu.opJMPIf(StatusFlagC, true), 3, 10}, {"IN", cpu.opIN, 2, 10},
		{"CC", cpu.opCALLIf(StatusFlagC, true), 3, 11}, {"CALL", cpu.opCALL, 3, 17}, {"SBI", cpu.opSBI, 2, 7}, {"RST 3", cpu.opRST(3), 1, 11},

		// 0xE0
		{"RPO", cpu.opRETIf(StatusFlagP, false), 1, 5}, {"POP H", cpu.opPOP(&cpu.H, &cpu.L), 1, 10}, {"JPO", cpu.opJMPIf(StatusFlagP, false), 3, 10}, {"XTHL", cpu.opXTHL, 1, 18},
		{"CPO", cpu.opCALLIf(StatusFlagP, false), 3, 11}, {"PUSH H", cpu.opPUSH(&cpu.H, &cpu.L), 1, 11}, {"ANI", cpu.opANI, 2, 7}, {"RST 4", cpu.opRST(4), 1, 11},
		{"RPE", cpu.opRETIf(StatusFlagP, true), 1, 5}, {"PCHL", cpu.opPCHL, 1, 5}, {"JPE", cpu.opJMPIf(StatusFlagP, true), 3, 10}, {"XCHG", cpu.opXCHG, 1, 5},
		{"CPE", cpu.opCALLIf(StatusFlagP, true), 3, 11}, {"CALL", cpu.opCALL, 3, 17}, {"XRI", cpu.opXRI, 2, 7}, {"RST 5", cpu.opRST(5), 1, 11},

		// 0xF0
		{"RP", cpu.opRETIf(StatusFlagS, false), 1, 5}, {"POP PSW", cpu.opPOPPSW, 1, 10}, {"JP", cpu.opJMPIf(StatusFlagS, false), 3, 10}, {"DI", cpu.opDI, 1, 4},
		{"CP", cpu.opCALLIf(StatusFlagS, false), 3, 11}, {"PUSH PSW", cpu.opPUSHPSW, 1, 11}, {"ORI", cpu.opORI, 2, 7}, {"RST 6", cpu.opRST(6), 1, 11},
		{"RM", cpu.opRETIf(StatusFlagS, true), 1, 5}, {"SPHL", cpu.opSPHL, 1, 5}, {"JM", cpu.opJMPIf(StatusFlagS, true), 3, 10}, {"EI", cpu.opEI, 1, 4},
		{"CM", cpu.opCALLIf(StatusFlagS, true), 3, 11}, {"CALL", cpu.opCALL, 3, 17}, {"CPI", cpu.opCPI, 2, 7}, {"RST 7", cpu.opRST(7), 1, 11},
	}
}
