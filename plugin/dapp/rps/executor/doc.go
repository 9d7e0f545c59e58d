// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
石头，剪刀，布: 两个玩家用 token 押注

玩法：

1. player1 在钱包中生成 salt, commitment = keccak256(player1 || salt || choice)
2. 创建： seed, mint, commitment, stake, 押注转入托管账户 (create)
3. 加入:  game， player2 的选择(明文)，押注转入托管账户 (join)
4. 开奖:  player1 公开 choice 和 salt, 与 commitment 比较 (reveal)
5. 结算:  任何人都可以调用, 按结果从托管账户付款 (settle)
6. 清理:  任何人都可以调用, 关闭托管账户, 删除游戏, 存储押金归调用者 (clean)
7. 超时:  没有人加入时 player1 可以随时取回押注, 过期后任何人都可以;
          加入后 player1 过期不开奖, player2 获得全部押注 (expire)

托管账户的 owner 是由游戏地址推导出的 ProgramAuthority, 没有私钥, 只有本执行器可以转出。

status: Created 1 -> Joined 2 -> Revealed 3 -> Settled 4 -> (clean 后删除)

//对外查询接口
//1. 按地址查询游戏
//2. 按状态, 或者状态和玩家地址分页查询
//3. 查询托管账户
*/
